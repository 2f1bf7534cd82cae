package api

import (
	"rightimage-site/pkg/content"
	"rightimage-site/pkg/models"
	"rightimage-site/pkg/validation"
	"rightimage-site/pkg/wizard"
)

// pageData is the root value handed to every page template.
type pageData struct {
	Site   *content.Site
	Active string
	Title  string

	// Error page
	Status  int
	Message string

	Contact *contactView
	Login   *loginView
}

func (h *Handlers) newPage(active, title string) *pageData {
	return &pageData{Site: h.site, Active: active, Title: title}
}

type contactView struct {
	Step wizard.Step

	Question      models.QuizQuestion
	QuestionIndex int
	QuestionCount int
	Progress      int

	Form   models.ContactForm
	Errors validation.Errors

	Services  []models.Option
	Issues    []models.Option
	Budgets   []models.Option
	Timelines []models.Option
	Scopes    []models.Option

	FirstName string
}

// ShowTech reports whether the timeline and scope questions are visible.
func (v *contactView) ShowTech() bool {
	return v.Form.HasService(models.ServiceTech)
}

func newContactView(state *wizard.State, errs validation.Errors) *contactView {
	v := &contactView{
		Step:      state.Step,
		Errors:    errs,
		Services:  models.ServiceOptions,
		Issues:    models.IssueOptions,
		Budgets:   models.BudgetOptions,
		Timelines: models.TimelineOptions,
		Scopes:    models.ScopeOptions,
	}

	switch state.Step {
	case wizard.StepQuiz:
		questions := models.QuizQuestions()
		i := state.CurrentQuestion()
		v.Question = questions[i]
		v.QuestionIndex = i
		v.QuestionCount = len(questions)
		v.Progress = (i + 1) * 100 / len(questions)
	case wizard.StepForm:
		if state.Form != nil {
			v.Form = *state.Form
		}
	case wizard.StepSuccess:
		if lead, ok := state.Lead(); ok {
			v.FirstName = lead.FirstName()
		}
	}
	return v
}

type loginView struct {
	Form   models.LoginForm
	Errors validation.Errors

	// AccountNotFound is set after every well-formed sign-in attempt.
	AccountNotFound bool

	ShowForgot   bool
	ForgotEmail  string
	ForgotErrors validation.Errors
	ForgotSent   bool
}
