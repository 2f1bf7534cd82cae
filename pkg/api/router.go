package api

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"rightimage-site/pkg/middleware"
)

// RouterConfig holds the router-level settings.
type RouterConfig struct {
	HTMLRender     render.HTMLRender
	Static         fs.FS
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	Logger         zerolog.Logger
}

// NewRouter registers every route on a new gin engine.
func NewRouter(h *Handlers, cfg RouterConfig) *gin.Engine {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = time.Minute
	}

	router := gin.New()
	router.HTMLRender = cfg.HTMLRender
	router.RedirectTrailingSlash = true

	router.Use(
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.AllowedOrigins),
	)

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Static != nil {
		router.StaticFS("/static", http.FS(cfg.Static))
	}

	router.GET("/", h.Home)
	router.GET("/services", h.Services)
	router.GET("/approach", h.Approach)
	router.GET("/results", h.Results)
	router.GET("/contact", h.Contact)
	router.GET("/login", h.Login)

	limited := router.Group("/", middleware.RateLimit(middleware.RateLimitConfig{
		RequestLimit: cfg.RateLimit,
		WindowSize:   cfg.RateWindow,
	}))
	limited.POST("/contact/start", h.StartConversation)
	limited.POST("/contact/quiz", h.AnswerQuiz)
	limited.POST("/contact/quiz/skip", h.SkipQuiz)
	limited.POST("/contact/form", h.SubmitContact)
	limited.POST("/contact/reset", h.ResetContact)
	limited.POST("/login", h.SubmitLogin)
	limited.POST("/login/forgot", h.ForgotPassword)
	limited.POST("/api/leads", h.SubmitLead)

	router.NoRoute(h.NotFound)

	return router
}
