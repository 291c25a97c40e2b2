package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// DefaultFormEndpoint is the Google Forms formResponse URL registrations go to.
const DefaultFormEndpoint = "https://docs.google.com/forms/u/0/d/e/1FAIpQLSc_2-9-3_aBcdEfGhIjKlMnOpQrStUvWxYzAbCdEfGhIjKlM/formResponse"

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	// TrustProxyHeaders takes the client IP from X-Forwarded-For / X-Real-IP.
	// Only enable behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`

	Form      FormConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Email     EmailConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// FormConfig describes the external form-collection endpoint
type FormConfig struct {
	// EndpointURL defaults to DefaultFormEndpoint
	EndpointURL string `env:"FORM_ENDPOINT_URL"`
	// NameField and EmailField are the Google Form entry IDs
	NameField  string `env:"FORM_NAME_FIELD" envDefault:"entry.1880386695"`
	EmailField string `env:"FORM_EMAIL_FIELD" envDefault:"entry.1981033239"`
	// SubmitTimeout bounds a single outbound submission
	SubmitTimeout time.Duration `env:"FORM_SUBMIT_TIMEOUT" envDefault:"10s"`
	// OpaqueResponse treats any completed round-trip as success, ignoring the status code
	OpaqueResponse bool `env:"FORM_OPAQUE_RESPONSE" envDefault:"false"`
}

// RateLimitConfig limits POST /register per client IP. Zero disables it.
type RateLimitConfig struct {
	PerMinute int `env:"REGISTER_RATE_PER_MINUTE" envDefault:"10"`
	Burst     int `env:"REGISTER_RATE_BURST" envDefault:"5"`
}

// Enabled reports whether the registration rate limit is active
func (r *RateLimitConfig) Enabled() bool {
	return r.PerMinute > 0 && r.Burst > 0
}

// CORSConfig lists origins allowed to POST /register from another host
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// EmailConfig holds confirmation email configuration
type EmailConfig struct {
	// Enabled determines if confirmation emails are sent
	Enabled bool `env:"EMAIL_ENABLED" envDefault:"false"`
	// MailgunDomain is the Mailgun domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// FromEmail is the default from email address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@example.com"`
	// FromName is the default from name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"Rotary Club of Manila Expats"`
	// SendTimeout bounds one confirmation send
	SendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"15s"`
	// QueueSize is how many confirmations may wait to be sent
	QueueSize int `env:"EMAIL_QUEUE_SIZE" envDefault:"100"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// Validate checks settings that env tags cannot express
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("WEBSITE_PORT out of range: %d", c.Port)
	}
	u, err := url.Parse(c.Form.EndpointURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("FORM_ENDPOINT_URL must be an absolute URL: %q", c.Form.EndpointURL)
	}
	if c.Form.NameField == "" || c.Form.EmailField == "" {
		return fmt.Errorf("FORM_NAME_FIELD and FORM_EMAIL_FIELD are required")
	}
	if c.Form.SubmitTimeout <= 0 {
		return fmt.Errorf("FORM_SUBMIT_TIMEOUT must be positive")
	}
	if c.Email.SendTimeout <= 0 {
		return fmt.Errorf("EMAIL_SEND_TIMEOUT must be positive")
	}
	if c.Email.QueueSize <= 0 {
		return fmt.Errorf("EMAIL_QUEUE_SIZE must be positive")
	}
	return nil
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	// fields without an env var set keep these values
	cfg := &Config{Form: FormConfig{EndpointURL: DefaultFormEndpoint}}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration and logs a summary
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("form_endpoint", cfg.Form.EndpointURL),
		slog.Bool("form_opaque_response", cfg.Form.OpaqueResponse),
		slog.Bool("trust_proxy_headers", cfg.TrustProxyHeaders),
		slog.Bool("email_enabled", cfg.Email.Enabled && cfg.Email.IsConfigured()),
	)

	return cfg, nil
}
