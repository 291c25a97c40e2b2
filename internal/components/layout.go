package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jjanuszczak/Genetic-Insights/internal/event"
)

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = event.Title
	}

	if config.Description == "" {
		config.Description = event.Tagline
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.png"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),

				Link(Rel("icon"), Href("/static/images/favicon.png")),
				Link(Rel("stylesheet"), Href("/static/css/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-background text-foreground font-sans"),
				g.Group(content),

				Script(Src("/static/js/toast.js")),
				Script(Src("/static/js/reveal.js")),
				Script(Src("/static/js/register.js")),
			),
		),
	})
}
