package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logos() g.Node {
	return Div(
		Class("flex items-center gap-x-3 sm:gap-x-4"),
		Img(
			Src("https://i.ibb.co/L8y9T7h/rotary-logo.png"),
			Alt("Rotary Club of Manila Expats Speaker Series Logo"),
			Class("logo logo-rotary"),
		),
		Img(
			Src("https://i.ibb.co/zV1jJ0p/makati-med-logo.png"),
			Alt("Makati Medical Center Logo"),
			Class("logo logo-makati"),
		),
	)
}

// RegisterButton scrolls to the registration form.
func RegisterButton(extra string) g.Node {
	classes := "btn btn-primary"
	if extra != "" {
		classes += " " + extra
	}
	return A(
		Href("#register"),
		Class(classes),
		g.Attr("data-scroll-register", ""),
		g.Text("Register Now"),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify inline-block"
	if sizeClasses := extractSizeClasses(iconClass); sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon string) g.Node {
	return Span(
		Class("icon-badge"),
		Span(
			Class("iconify icon-badge-glyph"),
			g.Attr("data-icon", convertIconName(icon)),
			g.Attr("aria-hidden", "true"),
		),
	)
}
