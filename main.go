package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"rightimage-site/pkg/api"
	"rightimage-site/pkg/clients/emailjs"
	"rightimage-site/pkg/clients/twilio"
	"rightimage-site/pkg/config"
	"rightimage-site/pkg/content"
	"rightimage-site/pkg/logging"
	"rightimage-site/pkg/render"
	"rightimage-site/pkg/services"
	"rightimage-site/pkg/sessions"
	"rightimage-site/web"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := logging.WithComponent("main")

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file loaded, using process environment")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Error loading configuration")
	}

	logging.Configure(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger = logging.WithComponent("main")

	site, err := content.Load(web.FS, content.DefaultPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error loading site content")
	}
	site.Home.Carousel.Interval = cfg.CarouselInterval

	pages, err := render.New(web.FS)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error parsing templates")
	}
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		logger.Fatal().Err(err).Msg("Error opening static assets")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := newSessionStore(ctx, cfg)
	defer closeStore()

	// Initialize API clients
	var emailClient emailjs.Client
	if cfg.EmailEnabled() {
		emailClient = emailjs.NewClient(emailjs.Config{
			BaseURL:    cfg.EmailJSBaseURL,
			ServiceID:  cfg.EmailJSServiceID,
			TemplateID: cfg.EmailJSTemplateID,
			PublicKey:  cfg.EmailJSPublicKey,
			PrivateKey: cfg.EmailJSPrivateKey,
		}, nil, logging.WithComponent("emailjs"))
	} else {
		logger.Warn().Msg("EmailJS is not configured; contact submissions will not be emailed")
	}

	var smsClient twilio.Client
	if cfg.SMSEnabled() {
		smsClient = twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.NotifyTimeout, logging.WithComponent("twilio"))
	}

	// Initialize services
	submissionService := services.NewLeadSubmissionService(services.Options{
		Email:      emailClient,
		SMS:        smsClient,
		AlertPhone: cfg.LeadAlertPhone,
		Timeout:    cfg.NotifyTimeout,
		Logger:     logging.WithComponent("submission"),
	})

	gin.SetMode(cfg.GinMode)

	// Initialize handlers
	handlers := api.NewHandlers(api.Options{
		Site:         site,
		Submission:   submissionService,
		Sessions:     store,
		Logger:       logging.WithComponent("api"),
		ShowHero:     cfg.ContactShowHero,
		CookieName:   cfg.SessionCookie,
		CookieSecure: cfg.CookieSecure,
		SessionTTL:   cfg.SessionTTL,
	})

	router := api.NewRouter(handlers, api.RouterConfig{
		HTMLRender:     pages,
		Static:         static,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit:      cfg.ContactRateLimit,
		RateWindow:     cfg.ContactRateWindow,
		Logger:         logging.WithComponent("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Error starting server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	// Let in-flight lead notifications finish.
	submissionService.Wait()
	logger.Info().Msg("Server stopped")
}

// newSessionStore uses Redis when configured, otherwise process memory.
func newSessionStore(ctx context.Context, cfg *config.Config) (sessions.Store, func()) {
	logger := logging.WithComponent("sessions")

	if cfg.RedisEnabled() {
		store, err := sessions.NewRedisStore(ctx, sessions.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, cfg.SessionTTL, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Error connecting to Redis")
		}
		return store, func() { _ = store.Close() }
	}

	store := sessions.NewMemoryStore(cfg.SessionTTL)
	go store.Run(ctx, time.Minute)
	logger.Info().Dur("ttl", cfg.SessionTTL).Msg("Using in-memory session store")
	return store, func() {}
}
