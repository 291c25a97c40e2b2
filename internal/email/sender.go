package email

import (
	"context"
	"log/slog"
)

// Sender delivers a single email
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}

// SendOptions contains options for sending an email
type SendOptions struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
	// Tags and Variables are provider metadata for filtering and webhooks
	Tags      []string
	Variables map[string]string
}

// SendResult contains the result of sending an email
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// NewSender creates the appropriate email sender based on configuration.
// Uses Mailgun when configured, otherwise falls back to no-op sender.
func NewSender(log *slog.Logger, cfg *Config) Sender {
	if cfg.IsConfigured() && cfg.Enabled {
		if mailgunSender := NewMailgunSender(cfg, log); mailgunSender != nil {
			log.Info("using Mailgun sender",
				slog.String("domain", cfg.MailgunDomain),
				slog.String("from", cfg.FromEmail))
			return mailgunSender
		}
	}

	log.Info("using no-op email sender (Mailgun not configured or email disabled)")
	return &noOpSender{log: log}
}

// noOpSender is a no-op email sender for development/testing
type noOpSender struct {
	log *slog.Logger
}

func (s *noOpSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	s.log.Info("email send (no-op)",
		slog.String("to", opts.To),
		slog.String("subject", opts.Subject))

	return &SendResult{
		Success:   true,
		MessageID: "noop-" + opts.To,
	}, nil
}
