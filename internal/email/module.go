package email

import (
	"go.uber.org/fx"

	"github.com/jjanuszczak/Genetic-Insights/internal/registration"
)

// Module provides confirmation email sending, backed by Mailgun when configured
var Module = fx.Module("email",
	fx.Provide(
		NewConfig,
		NewTemplateService,
		NewSender, // Uses Mailgun when configured, otherwise no-op
		fx.Annotate(NewConfirmer, fx.As(new(registration.Confirmer))),
	),
)
