package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rightimage-site/pkg/content"
	"rightimage-site/pkg/services"
	"rightimage-site/pkg/sessions"
)

// Options configures the HTTP handlers.
type Options struct {
	Site       *content.Site
	Submission services.LeadSubmissionService
	Sessions   sessions.Store
	Logger     zerolog.Logger

	// ShowHero starts new contact wizards at the hero step.
	ShowHero     bool
	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration
}

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	site       *content.Site
	submission services.LeadSubmissionService
	sessions   sessions.Store
	locks      *sessions.Locks
	logger     zerolog.Logger

	showHero     bool
	cookieName   string
	cookieSecure bool
	sessionTTL   time.Duration

	now   func() time.Time
	newID func() string
}

// NewHandlers creates a new Handlers instance
func NewHandlers(opts Options) *Handlers {
	cookie := opts.CookieName
	if cookie == "" {
		cookie = "rid_wizard"
	}
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Handlers{
		site:         opts.Site,
		submission:   opts.Submission,
		sessions:     opts.Sessions,
		locks:        sessions.NewLocks(),
		logger:       opts.Logger,
		showHero:     opts.ShowHero,
		cookieName:   cookie,
		cookieSecure: opts.CookieSecure,
		sessionTTL:   ttl,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handlers) Home(c *gin.Context) {
	h.page(c, http.StatusOK, "home", h.newPage("/", ""))
}

func (h *Handlers) Services(c *gin.Context) {
	h.page(c, http.StatusOK, "services", h.newPage("/services", h.site.Services.Title))
}

func (h *Handlers) Approach(c *gin.Context) {
	h.page(c, http.StatusOK, "approach", h.newPage("/approach", h.site.Approach.Title))
}

func (h *Handlers) Results(c *gin.Context) {
	h.page(c, http.StatusOK, "results", h.newPage("/results", h.site.Results.Title))
}

// NotFound renders the 404 page for unknown routes.
func (h *Handlers) NotFound(c *gin.Context) {
	p := h.newPage("", "Page not found")
	p.Status = http.StatusNotFound
	p.Message = "The page you're looking for doesn't exist or has moved."
	h.page(c, http.StatusNotFound, "error", p)
}

// fail logs err and renders the generic error page.
func (h *Handlers) fail(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)

	p := h.newPage("", "Something went wrong")
	p.Status = http.StatusInternalServerError
	p.Message = "We couldn't complete that request. Please try again in a moment."
	h.page(c, http.StatusInternalServerError, "error", p)
}

func (h *Handlers) page(c *gin.Context, status int, name string, data *pageData) {
	c.HTML(status, name, data)
}
