package registration

import "go.uber.org/fx"

var Module = fx.Module("registration",
	fx.Provide(
		fx.Annotate(NewGoogleFormFromConfig, fx.As(new(Forwarder))),
		NewConfirmationQueueFromParams,
		NewService,
	),
	fx.Invoke(RegisterQueueLifecycle),
)
