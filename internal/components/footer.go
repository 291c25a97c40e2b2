package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jjanuszczak/Genetic-Insights/internal/event"
)

func PageFooter(year int) g.Node {
	return Footer(
		Class("footer"),

		Div(
			Class("container footer-inner"),

			Div(
				Class("footer-copy"),
				P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, event.Organizer))),
				P(Class("text-sm"), g.Text("Built with ❤️ at Cloudflare")),
			),

			Div(
				Class("footer-social"),
				g.Group(g.Map(event.SocialLinks, func(l event.SocialLink) g.Node {
					return A(
						Href(l.URL),
						g.Attr("target", "_blank"),
						g.Attr("rel", "noopener noreferrer"),
						g.Attr("aria-label", l.Label),
						Icon(l.Icon+" size-6", ""),
					)
				})),
			),
		),
	)
}
