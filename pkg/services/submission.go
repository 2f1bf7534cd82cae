package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"rightimage-site/pkg/clients/emailjs"
	"rightimage-site/pkg/clients/twilio"
	"rightimage-site/pkg/metrics"
	"rightimage-site/pkg/models"
	"rightimage-site/pkg/utils"
)

// ErrNotificationsDisabled is returned by Notify when no channel is configured.
var ErrNotificationsDisabled = errors.New("lead notifications disabled")

// LeadSubmissionService defines the interface for handling accepted leads
type LeadSubmissionService interface {
	// Dispatch notifies the team about a lead in the background and returns
	// immediately. Failures are logged only.
	Dispatch(lead models.Lead)
	// Notify sends the lead to every enabled channel and waits for them.
	Notify(ctx context.Context, lead models.Lead) error
	// Wait blocks until all dispatched notifications have finished.
	Wait()
}

// Options configures NewLeadSubmissionService. Nil clients disable their channel.
type Options struct {
	Email      emailjs.Client
	SMS        twilio.Client
	AlertPhone string
	Timeout    time.Duration
	Logger     zerolog.Logger
}

type leadSubmissionServiceImpl struct {
	emailClient emailjs.Client
	smsClient   twilio.Client
	alertPhone  string
	timeout     time.Duration
	logger      zerolog.Logger
	wg          sync.WaitGroup
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(opts Options) LeadSubmissionService {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &leadSubmissionServiceImpl{
		emailClient: opts.Email,
		smsClient:   opts.SMS,
		alertPhone:  opts.AlertPhone,
		timeout:     timeout,
		logger:      opts.Logger,
	}
	if s.smsClient != nil && s.alertPhone == "" {
		s.smsClient = nil
	}
	return s
}

func (s *leadSubmissionServiceImpl) Dispatch(lead models.Lead) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		err := s.Notify(ctx, lead)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotificationsDisabled):
			s.logger.Warn().Str("lead_id", lead.ID).Msg("lead notifications disabled; lead was not forwarded")
		default:
			s.logger.Error().Err(err).Str("lead_id", lead.ID).Msg("lead notification failed")
		}
	}()
}

func (s *leadSubmissionServiceImpl) Wait() {
	s.wg.Wait()
}

func (s *leadSubmissionServiceImpl) Notify(ctx context.Context, lead models.Lead) error {
	if s.emailClient == nil && s.smsClient == nil {
		metrics.NotificationsTotal.WithLabelValues("none", "disabled").Inc()
		return ErrNotificationsDisabled
	}

	s.logger.Info().
		Str("lead_id", lead.ID).
		Str("email_hash", utils.RedactEmail(lead.Form.Email)).
		Strs("services", lead.Form.Services).
		Msg("forwarding lead")

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	record := func(channel string, err error) {
		if err != nil {
			metrics.NotificationsTotal.WithLabelValues(channel, "failed").Inc()
			mu.Lock()
			errs = append(errs, fmt.Errorf("%s: %w", channel, err))
			mu.Unlock()
			return
		}
		metrics.NotificationsTotal.WithLabelValues(channel, "sent").Inc()
	}

	if s.emailClient != nil {
		g.Go(func() error {
			record("email", s.emailClient.Send(ctx, TemplateParams(lead)))
			return nil
		})
	}
	if s.smsClient != nil {
		g.Go(func() error {
			record("sms", s.smsClient.SendSMS(ctx, s.alertPhone, SMSBody(lead)))
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.logger.Info().Str("lead_id", lead.ID).Msg("lead forwarded")
	return nil
}

// TemplateParams flattens a lead into the variables of the email template.
func TemplateParams(lead models.Lead) map[string]string {
	f := lead.Form
	params := map[string]string{
		"lead_id":      lead.ID,
		"name":         f.Name,
		"first_name":   lead.FirstName(),
		"email":        f.Email,
		"reply_to":     f.Email,
		"services":     strings.Join(f.ServiceLabels(), ", "),
		"issues":       strings.Join(f.IssueLabels(), ", "),
		"budget":       models.Label(models.BudgetOptions, f.Budget),
		"message":      f.Message,
		"timeline":     models.Label(models.TimelineOptions, f.Timeline),
		"scope":        models.Label(models.ScopeOptions, f.Scope),
		"brand_status": "",
		"priority":     "",
		"submitted_at": lead.SubmittedAt.UTC().Format(time.RFC3339),
	}
	if lead.Quiz != nil {
		params["brand_status"] = lead.Quiz.BrandStatusLabel()
		params["priority"] = lead.Quiz.PrioritiesLabel()
	}
	return params
}

// SMSBody is the short alert text sent to the on-call phone.
func SMSBody(lead models.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New lead: %s <%s>", lead.Form.Name, lead.Form.Email)
	if len(lead.Form.Services) > 0 {
		fmt.Fprintf(&b, " | %s", strings.Join(lead.Form.ServiceLabels(), ", "))
	}
	if lead.Form.Budget != "" {
		fmt.Fprintf(&b, " | %s", models.Label(models.BudgetOptions, lead.Form.Budget))
	}
	return b.String()
}
