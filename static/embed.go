// Package static holds the site's embedded stylesheets, scripts, and images.
package static

import "embed"

//go:embed css js images
var FS embed.FS
