package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jjanuszczak/Genetic-Insights/internal/event"
)

// LandingPage is the whole event page, with the registration form in state.
func LandingPage(state FormState, year int) g.Node {
	return Layout(
		PageConfig{
			Title:       event.Title + " | " + event.Organizer,
			Description: event.Tagline,
		},
		Topbar(),
		Main(
			Class("overflow-x-hidden"),
			Hero(),
			Speaker(),
			Features(),
			Registration(state),
		),
		PageFooter(year),
		Toaster(state.Notification),
	)
}
