package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jjanuszczak/Genetic-Insights/internal/event"
)

func Features() g.Node {
	return Section(
		Class("section section-muted reveal"),
		ID("why"),

		Div(
			Class("container"),

			Div(
				Class("text-center"),
				H2(Class("section-title"), g.Text("Why This Matters for Expats")),
				P(
					Class("section-lead text-muted"),
					g.Text("Understand the unique considerations for managing hereditary risk and healthcare while living abroad."),
				),
			),

			Div(
				Class("feature-grid"),
				g.Group(g.Map(event.Features, func(f event.Feature) g.Node {
					return Div(
						Class("card feature-card"),
						Div(
							Class("card-header"),
							IconBadge(f.Icon),
							H3(Class("card-title"), g.Text(f.Title)),
						),
						Div(
							Class("card-body"),
							P(Class("text-muted"), g.Text(f.Description)),
						),
					)
				})),
			),
		),
	)
}
