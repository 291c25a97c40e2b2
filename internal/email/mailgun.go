package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

// MailgunSender delivers confirmations through the Mailgun API.
type MailgunSender struct {
	cfg    *Config
	log    *slog.Logger
	client *mailgun.MailgunImpl
}

// NewMailgunSender returns nil if Mailgun is not configured. Whether email
// is enabled at all is decided by NewSender.
func NewMailgunSender(cfg *Config, log *slog.Logger) *MailgunSender {
	if !cfg.IsConfigured() {
		return nil
	}

	return &MailgunSender{
		cfg:    cfg,
		log:    log.With(logger.Scope("email.mailgun")),
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}
}

// Send delivers one message. Provider failures are reported in the result,
// not as an error.
func (s *MailgunSender) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	if err := s.validate(); err != nil {
		s.log.Error("email configuration invalid", logger.Error(err))
		return &SendResult{Success: false, Error: err.Error()}, nil
	}
	if opts.To == "" {
		return &SendResult{Success: false, Error: "recipient is required"}, nil
	}

	message := s.client.NewMessage(
		formatAddress(s.cfg.FromName, s.cfg.FromEmail),
		opts.Subject,
		opts.Text,
		formatAddress(opts.ToName, opts.To),
	)
	if opts.HTML != "" {
		message.SetHtml(opts.HTML)
	}
	if len(opts.Tags) > 0 {
		if err := message.AddTag(opts.Tags...); err != nil {
			return &SendResult{Success: false, Error: err.Error()}, nil
		}
	}
	for k, v := range opts.Variables {
		if err := message.AddVariable(k, v); err != nil {
			return &SendResult{Success: false, Error: err.Error()}, nil
		}
	}

	// the caller's deadline wins; SendTimeout covers callers without one
	if _, ok := ctx.Deadline(); !ok && s.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SendTimeout)
		defer cancel()
	}

	_, messageID, err := s.client.Send(ctx, message)
	if err != nil {
		s.log.Error("failed to send email",
			slog.String("subject", opts.Subject),
			slog.Bool("timeout", errors.Is(err, context.DeadlineExceeded)),
			logger.Error(err))
		return &SendResult{Success: false, Error: err.Error()}, nil
	}

	s.log.Info("email sent",
		slog.String("subject", opts.Subject),
		slog.String("message_id", messageID))

	return &SendResult{Success: true, MessageID: messageID}, nil
}

// formatAddress renders an RFC 5322 mailbox. Registrant names are free text
// and may hold commas, quotes, or non-ASCII letters.
func formatAddress(name, addr string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}

func (s *MailgunSender) validate() error {
	if s.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if s.cfg.FromName == "" {
		return fmt.Errorf("EMAIL_FROM_NAME is required")
	}
	return nil
}
