package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jjanuszczak/Genetic-Insights/internal/event"
	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

const (
	confirmationTemplate = "registration_confirmation"
	confirmationTag      = "registration-confirmation"
)

// Confirmer emails a registrant after their registration is forwarded.
type Confirmer struct {
	sender    Sender
	templates *TemplateService
	log       *slog.Logger
	now       func() time.Time
}

// NewConfirmer creates a confirmer
func NewConfirmer(sender Sender, templates *TemplateService, log *slog.Logger) *Confirmer {
	return &Confirmer{
		sender:    sender,
		templates: templates,
		log:       log.With(logger.Scope("email.confirmer")),
		now:       time.Now,
	}
}

// SendConfirmation renders and sends the confirmation email.
func (c *Confirmer) SendConfirmation(ctx context.Context, name, email string) error {
	subject := "You're registered: " + event.Title

	rendered, err := c.templates.Render(confirmationTemplate, TemplateContext{
		"subject":    subject,
		"name":       name,
		"email":      email,
		"eventTitle": event.Title,
		"speaker":    event.SpeakerName,
		"eventDate":  event.Date,
		"eventVenue": event.Venue,
		"year":       c.now().Year(),
	}, "default")
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	res, err := c.sender.Send(ctx, SendOptions{
		To:      email,
		ToName:  name,
		Subject: subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
		Tags:    []string{confirmationTag},
		Variables: map[string]string{
			"event": event.Slug,
		},
	})
	if err != nil {
		return fmt.Errorf("send confirmation: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("send confirmation: %s", res.Error)
	}

	c.log.Debug("confirmation sent", slog.String("message_id", res.MessageID))
	return nil
}
