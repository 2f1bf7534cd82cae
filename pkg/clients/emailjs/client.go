package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const sendPath = "/api/v1.0/email/send"

// Client defines the interface for sending templated email through EmailJS
type Client interface {
	Send(ctx context.Context, params map[string]string) error
}

// Config identifies the EmailJS service, template and account keys.
type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

type clientImpl struct {
	cfg        Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new EmailJS client
func NewClient(cfg Config, httpClient *http.Client, logger zerolog.Logger) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.emailjs.com"
	}
	return &clientImpl{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *clientImpl) Send(ctx context.Context, params map[string]string) error {
	payload := sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: params,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+sendPath, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("error from EmailJS API (%d): %s", resp.StatusCode, string(body))
	}

	c.logger.Debug().Str("template", c.cfg.TemplateID).Msg("email accepted by EmailJS")
	return nil
}
