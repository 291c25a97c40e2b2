package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jjanuszczak/Genetic-Insights/internal/event"
)

func Speaker() g.Node {
	return Section(
		Class("section reveal"),
		ID("speaker"),

		Div(
			Class("container speaker-grid"),

			Div(
				Class("speaker-photo"),
				Img(
					Src("https://images.unsplash.com/photo-1559839734-2b71ea197ec2?q=80&w=1170&auto=format&fit=crop"),
					Alt("Dr. Frances Victoria 'Ishka' Que"),
					Class("rounded-lg shadow-2xl"),
				),
			),

			Div(
				Class("speaker-body"),
				H2(Class("section-title"), g.Text("Meet the Speaker")),
				H3(Class("speaker-name"), g.Text(event.SpeakerName)),
				P(Class("speaker-role text-muted"), g.Text(event.SpeakerRole)),
				Div(
					Class("speaker-bio text-muted"),
					g.Group(g.Map(event.SpeakerBio, func(paragraph string) g.Node {
						return P(g.Text(paragraph))
					})),
				),
			),
		),
	)
}
