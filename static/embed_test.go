package static

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Assets(t *testing.T) {
	for _, name := range []string{
		"css/styles.css",
		"js/toast.js",
		"js/reveal.js",
		"js/register.js",
		"images/favicon.png",
		"images/og-image.png",
	} {
		_, err := fs.Stat(FS, name)
		assert.NoError(t, err, name)
	}
}

func TestRegisterScript_SubmitGuard(t *testing.T) {
	b, err := fs.ReadFile(FS, "js/register.js")
	require.NoError(t, err)
	src := string(b)

	// a submit while one is in flight returns before fetch
	assert.Contains(t, src, "if (inFlight) return;")
	assert.Contains(t, src, "button.disabled = on;")
	assert.Contains(t, src, `Accept: "application/json"`)
	assert.Contains(t, src, "form.reset();")
}
