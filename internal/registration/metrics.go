package registration

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes, used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeTransport   = "transport_error"
	OutcomeRejected    = "rejected"
	OutcomeRateLimited = "rate_limited"
)

// Confirmation email results, used as the "result" label.
const (
	ConfirmationSent    = "sent"
	ConfirmationFailed  = "failed"
	ConfirmationDropped = "dropped"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registration_submissions_total",
		Help: "Registration submissions by outcome",
	}, []string{"outcome"})

	ForwardDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "registration_forward_duration_seconds",
		Help:    "Time spent sending a registration to the form endpoint",
		Buckets: prometheus.DefBuckets,
	})

	ConfirmationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "registration_confirmations_total",
		Help: "Confirmation emails by result",
	}, []string{"result"})
)

// ObserveOutcome counts one submission attempt.
func ObserveOutcome(outcome string) {
	SubmissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveConfirmation counts one confirmation email result.
func ObserveConfirmation(result string) {
	ConfirmationsTotal.WithLabelValues(result).Inc()
}
