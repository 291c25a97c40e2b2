package email

import (
	"time"

	"github.com/jjanuszczak/Genetic-Insights/internal/config"
)

// Config contains email service configuration
type Config struct {
	// Enabled determines if email sending is enabled
	Enabled bool
	// MailgunDomain is the Mailgun domain
	MailgunDomain string
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string
	// FromEmail is the default from email address
	FromEmail string
	// FromName is the default from name
	FromName string
	// SendTimeout bounds a send whose context has no deadline
	SendTimeout time.Duration
}

// NewConfig creates email configuration from the app config
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Enabled:       cfg.Email.Enabled,
		MailgunDomain: cfg.Email.MailgunDomain,
		MailgunAPIKey: cfg.Email.MailgunAPIKey,
		FromEmail:     cfg.Email.FromEmail,
		FromName:      cfg.Email.FromName,
		SendTimeout:   cfg.Email.SendTimeout,
	}
}

// IsConfigured returns true if Mailgun is configured
func (c *Config) IsConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}
