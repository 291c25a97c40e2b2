package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jjanuszczak/Genetic-Insights/internal/registration"
)

// FormState is what the registration form renders: the values to refill,
// inline field errors, and an optional toast.
type FormState struct {
	Values       registration.Submission
	Errors       map[string]string
	Notification *Notification
}

// Registration renders the registration section. The form works without
// JavaScript; register.js upgrades it to an in-place submit.
func Registration(state FormState) g.Node {
	return Section(
		Class("section reveal"),
		ID("register"),

		Div(
			Class("container container-narrow"),

			Div(
				Class("text-center"),
				H2(Class("section-title"), g.Text("Register for the Event")),
				P(
					Class("section-lead text-muted"),
					g.Text("Secure your spot for this free virtual session. The Zoom link will be sent to your email upon registration."),
				),
			),

			Div(
				Class("card registration-card shadow-2xl"),
				Div(
					Class("card-body"),
					g.El("form",
						Method("post"),
						Action("/register"),
						g.Attr("novalidate"),
						g.Attr("data-registration-form", ""),
						Class("registration-form"),

						formField(registration.FieldName, "Full Name", "text", "Juan dela Cruz", "name",
							state.Values.Name, state.Errors[registration.FieldName]),
						formField(registration.FieldEmail, "Email Address", "email", "juan.delacruz@email.com", "email",
							state.Values.Email, state.Errors[registration.FieldEmail]),

						Button(
							Type("submit"),
							Class("btn btn-primary btn-block"),
							g.Attr("data-submit", ""),
							Span(g.Attr("data-submit-label", ""), g.Text("Submit Registration")),
							Span(
								Class("spinner"),
								g.Attr("data-submit-spinner", ""),
								g.Attr("role", "status"),
								g.Attr("aria-label", "Submitting"),
								g.Attr("hidden"),
							),
						),
					),
				),
			),
		),
	)
}

func formField(field, label, inputType, placeholder, autocomplete, value, errMsg string) g.Node {
	errID := field + "-error"

	return Div(
		Class("form-item"),
		Label(
			g.Attr("for", field),
			Class("form-label"),
			g.Text(label),
		),
		Input(
			ID(field),
			Name(field),
			Type(inputType),
			Placeholder(placeholder),
			Value(value),
			g.Attr("autocomplete", autocomplete),
			g.Attr("aria-describedby", errID),
			g.If(errMsg != "", g.Attr("aria-invalid", "true")),
			Class("form-input"),
		),
		P(
			ID(errID),
			Class("form-message"),
			g.Attr("data-field-error", field),
			g.If(errMsg == "", g.Attr("hidden")),
			g.Text(errMsg),
		),
	)
}
