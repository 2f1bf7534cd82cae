package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rightimage-site/pkg/metrics"
	"rightimage-site/pkg/models"
	"rightimage-site/pkg/sessions"
	"rightimage-site/pkg/validation"
	"rightimage-site/pkg/wizard"
)

const contactPath = "/contact"

// Contact renders the wizard step for the visitor's session.
func (h *Handlers) Contact(c *gin.Context) {
	state, err := h.loadState(c)
	if err != nil {
		h.fail(c, err, "Error loading contact session")
		return
	}
	h.renderContact(c, http.StatusOK, state, nil)
}

// StartConversation leaves the contact hero.
func (h *Handlers) StartConversation(c *gin.Context) {
	h.advance(c, func(s *wizard.State) error {
		return s.StartConversation(h.now())
	})
}

// AnswerQuiz records the answer to the current quiz question.
func (h *Handlers) AnswerQuiz(c *gin.Context) {
	question := c.PostForm("question")
	value := c.PostForm("value")
	h.advance(c, func(s *wizard.State) error {
		return s.Answer(question, value, h.now())
	})
}

// SkipQuiz jumps from the quiz to the form.
func (h *Handlers) SkipQuiz(c *gin.Context) {
	h.advance(c, func(s *wizard.State) error {
		return s.SkipQuiz(h.now())
	})
}

// SubmitContact validates the contact form. Invalid input re-renders the
// form with inline errors. Valid input finishes the wizard and hands the
// lead to the notifier without waiting for it.
func (h *Handlers) SubmitContact(c *gin.Context) {
	defer h.lockSession(c)()

	state, err := h.loadState(c)
	if err != nil {
		h.fail(c, err, "Error loading contact session")
		return
	}

	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn().Err(err).Msg("Error binding contact form")
	}

	from := state.Step
	errs, err := state.Submit(form, h.newID(), h.now())
	if errors.Is(err, wizard.ErrInvalidTransition) {
		h.logger.Debug().Err(err).Str("session", state.ID).Msg("Ignoring out-of-order wizard action")
		c.Redirect(http.StatusSeeOther, contactPath)
		return
	}
	if err != nil {
		h.fail(c, err, "Error submitting contact form")
		return
	}

	if err := h.sessions.Save(c.Request.Context(), state); err != nil {
		h.fail(c, err, "Error saving contact session")
		return
	}

	if !errs.Empty() {
		metrics.ObserveValidation(errs.Fields())
		h.renderContact(c, http.StatusUnprocessableEntity, state, errs)
		return
	}

	metrics.ObserveTransition(string(from), string(state.Step))
	lead, _ := state.Lead()
	h.accept(lead)

	c.Redirect(http.StatusSeeOther, contactPath)
}

// ResetContact discards the session so the next visit starts over.
func (h *Handlers) ResetContact(c *gin.Context) {
	defer h.lockSession(c)()

	if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
		if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
			h.fail(c, err, "Error deleting contact session")
			return
		}
	}
	h.clearCookie(c)
	c.Redirect(http.StatusSeeOther, contactPath)
}

// advance applies a wizard action, saves the state and redirects back to
// the contact page. Out-of-order actions just show the current step.
func (h *Handlers) advance(c *gin.Context, action func(*wizard.State) error) {
	defer h.lockSession(c)()

	state, err := h.loadState(c)
	if err != nil {
		h.fail(c, err, "Error loading contact session")
		return
	}

	from := state.Step
	switch err := action(state); {
	case errors.Is(err, wizard.ErrUnknownAnswer):
		metrics.ObserveValidation([]string{"quiz"})
		h.logger.Warn().Err(err).Str("session", state.ID).Msg("Rejected quiz answer")
		c.Redirect(http.StatusSeeOther, contactPath)
		return
	case errors.Is(err, wizard.ErrInvalidTransition):
		h.logger.Debug().Err(err).Str("session", state.ID).Msg("Ignoring out-of-order wizard action")
		c.Redirect(http.StatusSeeOther, contactPath)
		return
	case err != nil:
		h.fail(c, err, "Error applying wizard action")
		return
	}

	if err := h.sessions.Save(c.Request.Context(), state); err != nil {
		h.fail(c, err, "Error saving contact session")
		return
	}
	metrics.ObserveTransition(string(from), string(state.Step))
	c.Redirect(http.StatusSeeOther, contactPath)
}

// lockSession serializes wizard writes for the session named by the
// request cookie. Requests without a cookie always start a fresh session.
func (h *Handlers) lockSession(c *gin.Context) (unlock func()) {
	id, err := c.Cookie(h.cookieName)
	if err != nil || id == "" {
		return func() {}
	}
	return h.locks.Lock(id)
}

// loadState returns the visitor's wizard, starting a new one when the
// cookie is missing or its session expired.
func (h *Handlers) loadState(c *gin.Context) (*wizard.State, error) {
	ctx := c.Request.Context()
	if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
		state, err := h.sessions.Get(ctx, id)
		if err == nil {
			return state, nil
		}
		if !errors.Is(err, sessions.ErrNotFound) {
			return nil, err
		}
	}

	state := wizard.New(h.newID(), h.showHero, h.now())
	if err := h.sessions.Save(ctx, state); err != nil {
		return nil, err
	}
	h.setCookie(c, state.ID)
	return state, nil
}

func (h *Handlers) renderContact(c *gin.Context, status int, state *wizard.State, errs validation.Errors) {
	p := h.newPage(contactPath, "Contact")
	p.Contact = newContactView(state, errs)
	h.page(c, status, "contact", p)
}

func (h *Handlers) setCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, id, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)
}

func (h *Handlers) clearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
}
