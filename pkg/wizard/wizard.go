// Package wizard holds the contact page's step sequence:
// hero → quiz → form → success, or quiz → form → success without the hero.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"rightimage-site/pkg/models"
	"rightimage-site/pkg/validation"
)

// Step is a visible stage of the contact wizard.
type Step string

const (
	StepHero    Step = "hero"
	StepQuiz    Step = "quiz"
	StepForm    Step = "form"
	StepSuccess Step = "success"
)

var (
	ErrInvalidTransition = errors.New("wizard: action not allowed in current step")
	ErrUnknownAnswer     = errors.New("wizard: unknown quiz answer")
)

// State is one visitor's progress through the wizard. It lives for a single
// page session and is dropped once the visitor starts over.
type State struct {
	ID        string              `json:"id"`
	Step      Step                `json:"step"`
	Answers   models.QuizAnswers  `json:"answers"`
	Skipped   bool                `json:"skipped,omitempty"`
	Form      *models.ContactForm `json:"form,omitempty"`
	LeadID    string              `json:"leadId,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// New starts a wizard at the hero step, or directly at the quiz.
func New(id string, withHero bool, now time.Time) *State {
	step := StepQuiz
	if withHero {
		step = StepHero
	}
	return &State{ID: id, Step: step, CreatedAt: now, UpdatedAt: now}
}

// StartConversation leaves the hero step.
func (s *State) StartConversation(now time.Time) error {
	return s.move(StepHero, StepQuiz, now)
}

// Answer records one quiz answer. Once both questions are answered the
// wizard moves on to the form.
func (s *State) Answer(questionID, value string, now time.Time) error {
	if s.Step != StepQuiz {
		return fmt.Errorf("%w: answer in %s", ErrInvalidTransition, s.Step)
	}
	if !models.ValidAnswer(questionID, value) {
		return fmt.Errorf("%w: %s=%q", ErrUnknownAnswer, questionID, value)
	}
	switch questionID {
	case models.QuestionBrandStatus:
		s.Answers.BrandStatus = value
	case models.QuestionPriorities:
		s.Answers.Priorities = value
	}
	s.UpdatedAt = now
	if s.Answers.Complete() {
		return s.move(StepQuiz, StepForm, now)
	}
	return nil
}

// CompleteQuiz records both answers at once.
func (s *State) CompleteQuiz(a models.QuizAnswers, now time.Time) error {
	if s.Step != StepQuiz {
		return fmt.Errorf("%w: complete quiz in %s", ErrInvalidTransition, s.Step)
	}
	if !models.ValidAnswer(models.QuestionBrandStatus, a.BrandStatus) {
		return fmt.Errorf("%w: %s=%q", ErrUnknownAnswer, models.QuestionBrandStatus, a.BrandStatus)
	}
	if !models.ValidAnswer(models.QuestionPriorities, a.Priorities) {
		return fmt.Errorf("%w: %s=%q", ErrUnknownAnswer, models.QuestionPriorities, a.Priorities)
	}
	s.Answers = a
	return s.move(StepQuiz, StepForm, now)
}

// SkipQuiz goes straight to the form, discarding any partial answers.
func (s *State) SkipQuiz(now time.Time) error {
	if err := s.move(StepQuiz, StepForm, now); err != nil {
		return err
	}
	s.Answers = models.QuizAnswers{}
	s.Skipped = true
	return nil
}

// Submit validates the form and, when it passes, finishes the wizard.
// Field errors leave the wizard on the form step.
func (s *State) Submit(form models.ContactForm, leadID string, now time.Time) (validation.Errors, error) {
	if s.Step != StepForm {
		return nil, fmt.Errorf("%w: submit in %s", ErrInvalidTransition, s.Step)
	}
	form.Normalize()
	if errs := validation.Struct(form); !errs.Empty() {
		s.Form = &form
		s.UpdatedAt = now
		return errs, nil
	}
	s.Form = &form
	s.LeadID = leadID
	return nil, s.move(StepForm, StepSuccess, now)
}

// CurrentQuestion returns the index of the first unanswered quiz question.
func (s *State) CurrentQuestion() int {
	for i, q := range models.QuizQuestions() {
		if s.Answers.Get(q.ID) == "" {
			return i
		}
	}
	return len(models.QuizQuestions()) - 1
}

// Quiz returns the recorded answers, or nil when the quiz was skipped or
// is not finished.
func (s *State) Quiz() *models.QuizAnswers {
	if !s.Answers.Complete() {
		return nil
	}
	a := s.Answers
	return &a
}

// Lead builds the lead for a finished wizard.
func (s *State) Lead() (models.Lead, bool) {
	if s.Step != StepSuccess || s.Form == nil {
		return models.Lead{}, false
	}
	return models.Lead{
		ID:          s.LeadID,
		Quiz:        s.Quiz(),
		Form:        *s.Form,
		SubmittedAt: s.UpdatedAt,
	}, true
}

// Done reports whether the wizard reached its terminal step.
func (s *State) Done() bool { return s.Step == StepSuccess }

func (s *State) move(from, to Step, now time.Time) error {
	if s.Step != from {
		return fmt.Errorf("%w: %s -> %s from %s", ErrInvalidTransition, from, to, s.Step)
	}
	s.Step = to
	s.UpdatedAt = now
	return nil
}
