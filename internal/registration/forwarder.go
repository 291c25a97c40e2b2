package registration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/jjanuszczak/Genetic-Insights/internal/config"
	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

// Forwarder delivers a validated submission to the form-collection endpoint.
type Forwarder interface {
	Forward(ctx context.Context, sub Submission) error
}

// GoogleForm posts submissions to a Google Forms formResponse URL as
// application/x-www-form-urlencoded, one request per call, no retries.
type GoogleForm struct {
	client     *resty.Client
	endpoint   string
	nameField  string
	emailField string
	opaque     bool
	log        *slog.Logger
}

// NewGoogleForm creates a forwarder from form configuration.
func NewGoogleForm(cfg config.FormConfig, log *slog.Logger) *GoogleForm {
	log = log.With(logger.Scope("registration.forwarder"))

	client := resty.New().
		SetTimeout(cfg.SubmitTimeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "genetic-insights-site/1.0").
		SetLogger(restyLogger{log: log})

	return &GoogleForm{
		client:     client,
		endpoint:   cfg.EndpointURL,
		nameField:  cfg.NameField,
		emailField: cfg.EmailField,
		opaque:     cfg.OpaqueResponse,
		log:        log,
	}
}

// NewGoogleFormFromConfig adapts NewGoogleForm for fx.
func NewGoogleFormFromConfig(cfg *config.Config, log *slog.Logger) *GoogleForm {
	return NewGoogleForm(cfg.Form, log)
}

// Forward sends sub. In opaque mode any completed round-trip is success,
// matching a no-cors browser fetch; otherwise non-2xx is a RejectedError.
func (f *GoogleForm) Forward(ctx context.Context, sub Submission) error {
	resp, err := f.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			f.nameField:  sub.Name,
			f.emailField: sub.Email,
		}).
		Post(f.endpoint)
	if err != nil {
		return &TransportError{Endpoint: f.endpoint, Err: err}
	}

	f.log.Debug("form endpoint responded",
		slog.Int("status", resp.StatusCode()),
		slog.Duration("elapsed", resp.Time()))

	if f.opaque {
		return nil
	}
	if !resp.IsSuccess() {
		return &RejectedError{StatusCode: resp.StatusCode()}
	}
	return nil
}

// restyLogger routes resty's internal messages through slog.
type restyLogger struct {
	log *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, v...))
}
