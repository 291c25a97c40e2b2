package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jjanuszczak/Genetic-Insights/internal/event"
)

func Hero() g.Node {
	return Section(
		Class("hero bg-gradient-hero"),
		ID("hero"),

		Div(
			Class("container text-center"),

			H1(
				Class("hero-title fade-up"),
				g.Text(event.Title),
			),

			P(
				Class("hero-tagline fade-up delay-1"),
				g.Text(event.Tagline),
			),

			Div(
				Class("hero-actions fade-up delay-2"),
				RegisterButton("btn-lg"),
				Div(
					Class("hero-when"),
					P(Class("font-semibold"), g.Text(event.Date)),
					P(Class("text-sm text-muted"), g.Text(event.Venue)),
				),
			),
		),
	)
}
