package twilio

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client defines the interface for sending SMS through the Twilio Messaging API
type Client interface {
	SendSMS(ctx context.Context, to, body string) error
}

// messageCreator is the part of the Twilio REST client the SMS alert uses.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type clientImpl struct {
	messages messageCreator
	from     string
	logger   zerolog.Logger
}

// NewClient creates a new Twilio client. A positive timeout bounds each
// HTTP request to the REST API.
func NewClient(accountSid, authToken, from string, timeout time.Duration, logger zerolog.Logger) Client {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &clientImpl{
		messages: client.Api,
		from:     from,
		logger:   logger,
	}
}

type createResult struct {
	msg *twilioApi.ApiV2010Message
	err error
}

// SendSMS returns when Twilio answers or ctx is done, whichever comes
// first. The REST client takes no context, so an abandoned request keeps
// running until its HTTP timeout.
func (c *clientImpl) SendSMS(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	done := make(chan createResult, 1)
	go func() {
		msg, err := c.messages.CreateMessage(params)
		done <- createResult{msg: msg, err: err}
	}()

	var resp *twilioApi.ApiV2010Message
	select {
	case <-ctx.Done():
		return fmt.Errorf("error sending SMS: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("error sending SMS: %w", res.err)
		}
		resp = res.msg
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	c.logger.Debug().Str("sid", sid).Msg("SMS queued by Twilio")
	return nil
}
