package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rightimage-site/pkg/models"
	"rightimage-site/pkg/utils"
	"rightimage-site/pkg/validation"
)

const loginPath = "/login"

func (h *Handlers) Login(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, &loginView{ShowForgot: c.Query("forgot") == "1"})
}

// SubmitLogin checks the sign-in form. There are no client accounts, so
// a well-formed attempt always ends in "account not found".
func (h *Handlers) SubmitLogin(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn().Err(err).Msg("Error binding login form")
	}

	view := &loginView{Form: models.LoginForm{Email: form.Email}}
	if errs := validation.Struct(form); !errs.Empty() {
		view.Errors = errs
		h.renderLogin(c, http.StatusUnprocessableEntity, view)
		return
	}

	h.logger.Info().Str("email_hash", utils.RedactEmail(form.Email)).Msg("Sign-in attempt for unknown account")
	view.AccountNotFound = true
	h.renderLogin(c, http.StatusUnauthorized, view)
}

// ForgotPassword always confirms, whether or not the address is known.
func (h *Handlers) ForgotPassword(c *gin.Context) {
	var form models.ForgotPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn().Err(err).Msg("Error binding forgot password form")
	}

	view := &loginView{ShowForgot: true, ForgotEmail: form.Email}
	if errs := validation.Struct(form); !errs.Empty() {
		view.ForgotErrors = errs
		h.renderLogin(c, http.StatusUnprocessableEntity, view)
		return
	}

	view.ForgotSent = true
	h.renderLogin(c, http.StatusOK, view)
}

func (h *Handlers) renderLogin(c *gin.Context, status int, view *loginView) {
	p := h.newPage(loginPath, h.site.Login.Title)
	p.Login = view
	h.page(c, status, "login", p)
}
