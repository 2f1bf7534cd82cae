// Package metrics provides Prometheus metrics for the site.
// Labels stay low-cardinality: no session or lead IDs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WizardTransitionsTotal counts contact wizard step changes.
	WizardTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rid_wizard_transitions_total",
		Help: "Total number of contact wizard step transitions, by from and to step.",
	}, []string{"from", "to"})

	// LeadsSubmittedTotal counts leads that passed validation.
	LeadsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rid_leads_submitted_total",
		Help: "Total number of accepted lead submissions.",
	})

	// ValidationFailuresTotal counts inline field errors by field.
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rid_validation_failures_total",
		Help: "Total number of form field validation failures, by field.",
	}, []string{"field"})

	// NotificationsTotal counts lead notification attempts by channel and result.
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rid_notifications_total",
		Help: "Total number of lead notification attempts, by channel and result (sent/failed/disabled).",
	}, []string{"channel", "result"})
)

// ObserveTransition records a wizard step change; no-op when the step did not change.
func ObserveTransition(from, to string) {
	if from == to {
		return
	}
	WizardTransitionsTotal.WithLabelValues(from, to).Inc()
}

// ObserveValidation records one failure per field.
func ObserveValidation(fields []string) {
	for _, f := range fields {
		ValidationFailuresTotal.WithLabelValues(f).Inc()
	}
}
