package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"rightimage-site/pkg/metrics"
	"rightimage-site/pkg/models"
)

type fakeEmail struct {
	mu    sync.Mutex
	calls []map[string]string
	err   error
	block bool
}

func (f *fakeEmail) Send(ctx context.Context, params map[string]string) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, params)
	return f.err
}

func (f *fakeEmail) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSMS struct {
	mu    sync.Mutex
	to    []string
	body  []string
	err   error
	block bool
}

func (f *fakeSMS) SendSMS(ctx context.Context, to, body string) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.to = append(f.to, to)
	f.body = append(f.body, body)
	return f.err
}

func testLead() models.Lead {
	return models.Lead{
		ID:   "lead-42",
		Quiz: &models.QuizAnswers{BrandStatus: "growing", Priorities: "conversion"},
		Form: models.ContactForm{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Services: []string{"performance", "tech"},
			Issues:   []string{"acos"},
			Budget:   "15k-50k",
			Message:  "Our ACOS keeps climbing.",
			Timeline: "urgent",
			Scope:    "medium",
		},
		SubmittedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNotifyDisabledWithoutChannels(t *testing.T) {
	svc := NewLeadSubmissionService(Options{Logger: zerolog.Nop()})
	before := testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("none", "disabled"))

	err := svc.Notify(context.Background(), testLead())
	assert.ErrorIs(t, err, ErrNotificationsDisabled)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("none", "disabled")))
}

func TestNotifyFansOutToAllChannels(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	svc := NewLeadSubmissionService(Options{Email: email, SMS: sms, AlertPhone: "+15550009999", Logger: zerolog.Nop()})

	require.NoError(t, svc.Notify(context.Background(), testLead()))

	require.Equal(t, 1, email.count())
	params := email.calls[0]
	assert.Equal(t, "Ada", params["first_name"])
	assert.Equal(t, "Performance Marketing, Custom Tech Solutions", params["services"])
	assert.Equal(t, "Growing and scaling", params["brand_status"])
	assert.Equal(t, "Lead generation", params["priority"])
	assert.Equal(t, "$15k - $50k / month", params["budget"])

	require.Len(t, sms.to, 1)
	assert.Equal(t, "+15550009999", sms.to[0])
	assert.Contains(t, sms.body[0], "Ada Lovelace <ada@example.com>")
}

func TestNotifySMSNeedsAlertPhone(t *testing.T) {
	sms := &fakeSMS{}
	svc := NewLeadSubmissionService(Options{SMS: sms, Logger: zerolog.Nop()})

	assert.ErrorIs(t, svc.Notify(context.Background(), testLead()), ErrNotificationsDisabled)
	assert.Empty(t, sms.to)
}

func TestNotifyJoinsChannelErrorsWithoutCancellingSiblings(t *testing.T) {
	emailErr := errors.New("emailjs 503")
	email := &fakeEmail{err: emailErr}
	sms := &fakeSMS{}
	svc := NewLeadSubmissionService(Options{Email: email, SMS: sms, AlertPhone: "+1555", Logger: zerolog.Nop()})
	before := testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("email", "failed"))

	err := svc.Notify(context.Background(), testLead())
	assert.ErrorIs(t, err, emailErr)
	assert.Len(t, sms.to, 1, "sms still sent when email fails")
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.NotificationsTotal.WithLabelValues("email", "failed")))
}

func TestNotifyTimeoutBoundsSMS(t *testing.T) {
	sms := &fakeSMS{block: true}
	svc := NewLeadSubmissionService(Options{SMS: sms, AlertPhone: "+1555", Logger: zerolog.Nop()})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := svc.Notify(ctx, testLead())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDispatchReturnsImmediatelyAndWaitDrains(t *testing.T) {
	defer goleak.VerifyNone(t)

	email := &fakeEmail{block: true}
	svc := NewLeadSubmissionService(Options{Email: email, Timeout: 30 * time.Millisecond, Logger: zerolog.Nop()})

	start := time.Now()
	svc.Dispatch(testLead())
	assert.Less(t, time.Since(start), 20*time.Millisecond, "dispatch must not block on delivery")

	svc.Wait()
}

func TestDispatchSwallowsFailures(t *testing.T) {
	email := &fakeEmail{err: errors.New("unreachable")}
	svc := NewLeadSubmissionService(Options{Email: email, Logger: zerolog.Nop()})

	svc.Dispatch(testLead())
	svc.Wait()
	assert.Equal(t, 1, email.count())
}

func TestTemplateParamsWithoutQuiz(t *testing.T) {
	lead := testLead()
	lead.Quiz = nil
	lead.Form.Issues = nil
	lead.Form.Budget = ""

	params := TemplateParams(lead)
	assert.Empty(t, params["brand_status"])
	assert.Empty(t, params["priority"])
	assert.Empty(t, params["issues"])
	assert.Empty(t, params["budget"])
	assert.Equal(t, "2026-01-02T03:04:05Z", params["submitted_at"])
}

func TestSMSBody(t *testing.T) {
	assert.Equal(t,
		"New lead: Ada Lovelace <ada@example.com> | Performance Marketing, Custom Tech Solutions | $15k - $50k / month",
		SMSBody(testLead()))
}
