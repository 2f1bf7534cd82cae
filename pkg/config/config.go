package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration values
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	EmailJSServiceID  string `env:"EMAILJS_SERVICE_ID"`
	EmailJSTemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	EmailJSPublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	EmailJSPrivateKey string `env:"EMAILJS_PRIVATE_KEY"`
	EmailJSBaseURL    string `env:"EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com"`

	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`
	LeadAlertPhone   string `env:"LEAD_ALERT_PHONE"`

	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`

	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"rid_wizard"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ContactRateLimit  int           `env:"CONTACT_RATE_LIMIT" envDefault:"10"`
	ContactRateWindow time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"1m"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	ContactShowHero  bool          `env:"CONTACT_SHOW_HERO" envDefault:"false"`
	CarouselInterval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"10s"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.EmailJSServiceID = strings.TrimSpace(c.EmailJSServiceID)
	c.EmailJSTemplateID = strings.TrimSpace(c.EmailJSTemplateID)
	c.EmailJSPublicKey = strings.TrimSpace(c.EmailJSPublicKey)
	c.EmailJSBaseURL = strings.TrimRight(strings.TrimSpace(c.EmailJSBaseURL), "/")
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.NotifyTimeout <= 0 {
		c.NotifyTimeout = 10 * time.Second
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 30 * time.Minute
	}
	if c.ContactRateLimit <= 0 {
		c.ContactRateLimit = 10
	}
	if c.ContactRateWindow <= 0 {
		c.ContactRateWindow = time.Minute
	}
	if c.CarouselInterval <= 0 {
		c.CarouselInterval = 10 * time.Second
	}
	origins := c.CORSAllowedOrigins[:0]
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSAllowedOrigins = origins
}

// EmailEnabled reports whether all three EmailJS values are present.
// Missing values disable lead emails without failing the contact flow.
func (c *Config) EmailEnabled() bool {
	return c.EmailJSServiceID != "" && c.EmailJSTemplateID != "" && c.EmailJSPublicKey != ""
}

// SMSEnabled reports whether the Twilio lead alert is fully configured.
func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" &&
		c.TwilioFromNumber != "" && c.LeadAlertPhone != ""
}

// RedisEnabled reports whether wizard sessions should be kept in Redis.
func (c *Config) RedisEnabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}
