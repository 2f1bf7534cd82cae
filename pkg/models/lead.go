package models

import (
	"strings"
	"time"
)

// Lead is a prospective client's contact submission, together with the quiz
// answers given before it (nil when the quiz was skipped).
type Lead struct {
	ID          string       `json:"id"`
	Quiz        *QuizAnswers `json:"quiz,omitempty"`
	Form        ContactForm  `json:"form"`
	SubmittedAt time.Time    `json:"submittedAt"`
}

// FirstName returns the first word of the submitted name, or "there".
func (l Lead) FirstName() string {
	fields := strings.Fields(l.Form.Name)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}

// LeadRequest is the JSON body accepted by the lead API.
type LeadRequest struct {
	Quiz *QuizAnswers `json:"quiz"`
	Form ContactForm  `json:"form"`
}
