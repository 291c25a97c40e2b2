package registration

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"

	"github.com/jjanuszczak/Genetic-Insights/internal/config"
	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

type confirmation struct {
	name  string
	email string
}

// ConfirmationQueue sends confirmation emails on its own goroutine, so a
// slow mail provider never holds up the registration response.
type ConfirmationQueue struct {
	confirmer Confirmer
	log       *slog.Logger
	size      int
	timeout   time.Duration

	mu        sync.Mutex
	running   bool
	jobs      chan confirmation
	stoppedCh chan struct{}
}

// NewConfirmationQueue creates a stopped queue holding up to size pending
// confirmations. Each send is bounded by timeout.
func NewConfirmationQueue(confirmer Confirmer, log *slog.Logger, size int, timeout time.Duration) *ConfirmationQueue {
	return &ConfirmationQueue{
		confirmer: confirmer,
		log:       log.With(logger.Scope("registration.confirmations")),
		size:      size,
		timeout:   timeout,
	}
}

// QueueParams are the fx dependencies for NewConfirmationQueueFromParams
type QueueParams struct {
	fx.In

	Confirmer Confirmer `optional:"true"`
	Config    *config.Config
	Log       *slog.Logger
}

// NewConfirmationQueueFromParams returns nil when no Confirmer is provided.
func NewConfirmationQueueFromParams(p QueueParams) *ConfirmationQueue {
	if p.Confirmer == nil {
		return nil
	}
	return NewConfirmationQueue(p.Confirmer, p.Log, p.Config.Email.QueueSize, p.Config.Email.SendTimeout)
}

// RegisterQueueLifecycle starts and drains the queue with the app.
func RegisterQueueLifecycle(lc fx.Lifecycle, q *ConfirmationQueue) {
	if q == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: q.Start,
		OnStop:  q.Stop,
	})
}

// Start launches the send loop.
func (q *ConfirmationQueue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return nil
	}

	q.running = true
	q.jobs = make(chan confirmation, q.size)
	q.stoppedCh = make(chan struct{})

	q.log.Info("confirmation queue starting",
		slog.Int("size", q.size),
		slog.Duration("send_timeout", q.timeout))

	go q.run(q.jobs, q.stoppedCh)
	return nil
}

// Stop refuses new confirmations and waits for queued ones to be sent or
// for ctx to end.
func (q *ConfirmationQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return nil
	}
	q.running = false
	close(q.jobs)
	stopped := q.stoppedCh
	q.mu.Unlock()

	select {
	case <-stopped:
		q.log.Info("confirmation queue drained")
	case <-ctx.Done():
		q.log.Warn("confirmation queue stop timeout, pending emails dropped")
	}
	return nil
}

// Enqueue schedules a confirmation without blocking. It reports false when
// the queue is stopped or full.
func (q *ConfirmationQueue) Enqueue(name, email string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.running {
		ObserveConfirmation(ConfirmationDropped)
		q.log.Warn("confirmation dropped, queue not running")
		return false
	}

	select {
	case q.jobs <- confirmation{name: name, email: email}:
		return true
	default:
		ObserveConfirmation(ConfirmationDropped)
		q.log.Warn("confirmation dropped, queue full", slog.Int("size", q.size))
		return false
	}
}

func (q *ConfirmationQueue) run(jobs <-chan confirmation, stopped chan<- struct{}) {
	defer close(stopped)
	for job := range jobs {
		q.send(job)
	}
}

func (q *ConfirmationQueue) send(job confirmation) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	if err := q.confirmer.SendConfirmation(ctx, job.name, job.email); err != nil {
		ObserveConfirmation(ConfirmationFailed)
		q.log.Warn("confirmation email failed", logger.Error(err))
		return
	}
	ObserveConfirmation(ConfirmationSent)
}
