package registration

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

// Notification texts shown after a submission.
const (
	SuccessTitle       = "Registration successful!"
	SuccessDescription = "Thank you for registering. We will send the Zoom link to your email shortly."
	FailureTitle       = "Registration failed."
	FailureDescription = "Something went wrong. Please try again later."
)

// Confirmer sends the registrant a confirmation after a successful submission.
type Confirmer interface {
	SendConfirmation(ctx context.Context, name, email string) error
}

// Result describes a successful registration.
type Result struct {
	Title       string
	Description string
}

// Service runs the submit flow: normalize, validate, forward once, then
// queue a confirmation.
type Service struct {
	forwarder     Forwarder
	confirmations *ConfirmationQueue
	log           *slog.Logger
}

// ServiceParams are the fx dependencies for NewService
type ServiceParams struct {
	fx.In

	Forwarder     Forwarder
	Confirmations *ConfirmationQueue `optional:"true"`
	Log           *slog.Logger
}

// NewService creates the registration service for fx.
func NewService(p ServiceParams) *Service {
	return New(p.Forwarder, p.Confirmations, p.Log)
}

// New creates a registration service. confirmations may be nil.
func New(fwd Forwarder, confirmations *ConfirmationQueue, log *slog.Logger) *Service {
	return &Service{
		forwarder:     fwd,
		confirmations: confirmations,
		log:           log.With(logger.Scope("registration")),
	}
}

// Register validates sub and forwards it exactly once. It returns
// ValidationErrors without touching the network, or a TransportError /
// RejectedError when delivery fails. Nothing is retried.
func (s *Service) Register(ctx context.Context, sub Submission) (*Result, error) {
	sub.Normalize()

	if err := sub.Validate(); err != nil {
		ObserveOutcome(OutcomeInvalid)
		return nil, err
	}

	start := time.Now()
	err := s.forwarder.Forward(ctx, sub)
	ForwardDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			ObserveOutcome(OutcomeRejected)
			s.log.Error("form endpoint rejected registration",
				slog.Int("status", rejected.StatusCode))
		} else {
			ObserveOutcome(OutcomeTransport)
			s.log.Error("form submission error", logger.Error(err))
			var te *TransportError
			if !errors.As(err, &te) {
				err = &TransportError{Err: err}
			}
		}
		return nil, err
	}

	ObserveOutcome(OutcomeSuccess)
	s.log.Info("registration forwarded", slog.Duration("elapsed", time.Since(start)))

	// the email goes out after the response; its result never changes the outcome
	if s.confirmations != nil {
		s.confirmations.Enqueue(sub.Name, sub.Email)
	}

	return &Result{Title: SuccessTitle, Description: SuccessDescription}, nil
}
