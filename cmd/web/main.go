package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hostup.co.in/hostup-web/internal/booking"
	"hostup.co.in/hostup-web/internal/chat"
	"hostup.co.in/hostup-web/internal/config"
	"hostup.co.in/hostup-web/internal/content"
	"hostup.co.in/hostup-web/internal/metrics"
	mw "hostup.co.in/hostup-web/internal/middleware"
	"hostup.co.in/hostup-web/internal/observability"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode reparses templates on every request and disables asset caching.
	devMode   bool
	tmplCache *templateSet
)

// app holds the dependencies shared by the handlers.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	content  *content.Store
	chat     *chat.Responder
	metrics  *metrics.SiteMetrics
	registry *prometheus.Registry
	biz      booking.Business
	// extra wizard options, used by tests to pin the clock
	wizardOpts []booking.Option
}

func main() {
	var (
		addr       string
		tmplPath   string
		pubPath    string
		contentDir string
	)
	flag.StringVar(&addr, "addr", "", "HTTP listen address (default :$HOSTUP_PORT)")
	flag.StringVar(&tmplPath, "templates", "", "templates directory")
	flag.StringVar(&pubPath, "public", "", "public assets directory")
	flag.StringVar(&contentDir, "content", "", "content directory (pages, faqs.yaml, site.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if tmplPath != "" {
		cfg.Paths.Templates = tmplPath
	}
	if pubPath != "" {
		cfg.Paths.Public = pubPath
	}
	if contentDir != "" {
		cfg.Content.Dir = contentDir
	}
	if addr == "" {
		addr = cfg.Server.Addr()
	}

	logger, err := observability.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := mw.ConfigureSession(mw.SessionOptions{
		SigningKey: cfg.Session.SigningKey,
		BlockKey:   cfg.Session.BlockKey,
		Secure:     cfg.Server.Production(),
	}); err != nil {
		logger.Fatal("configure session", zap.Error(err))
	}

	templatesDir = cfg.Paths.Templates
	publicDir = cfg.Paths.Public
	devMode = cfg.Server.Dev

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a := newApp(cfg, logger, registry)

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("web listening",
		zap.String("addr", addr),
		zap.Bool("dev", devMode),
		zap.Duration("chat_latency", a.chat.Latency()),
		zap.String("environment", cfg.Server.Environment),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newApp(cfg config.Config, logger *zap.Logger, registry *prometheus.Registry) *app {
	secondary := ""
	if len(cfg.Business.SupportNumbers) > 1 {
		secondary = cfg.Business.SupportNumbers[1]
	}
	return &app{
		cfg:    cfg,
		logger: logger,
		content: content.NewStore(cfg.Content.Dir,
			content.WithCacheTTL(cfg.Content.CacheTTL),
		),
		chat: chat.NewResponder(chat.Contacts{
			WhatsApp:  cfg.Business.WhatsAppNumber,
			Secondary: secondary,
			Email:     cfg.Business.ContactEmail,
		}, chat.WithLatency(cfg.Chat.Latency)),
		metrics:  metrics.NewSiteMetrics(registry),
		registry: registry,
		biz: booking.Business{
			Name:           cfg.Business.Name,
			WhatsAppNumber: cfg.Business.WhatsAppNumber,
			Email:          cfg.Business.ContactEmail,
		},
		wizardOpts: []booking.Option{booking.WithLocation(indiaTime())},
	}
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(a.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(a.metrics.Middleware)

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))

	// Static assets under /assets/
	r.Handle("/assets/*", mw.AssetsWithCache("/assets", filepath.Join(publicDir, "assets"), devMode))

	r.Group(func(r chi.Router) {
		r.Use(mw.Session)
		r.Use(mw.CSRF)
		r.Use(a.recoverPage)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(30 * time.Second))

			r.Get("/", a.HomeHandler)
			r.Get("/about", a.AboutHandler)
			r.Get("/services", a.ServicesHandler)
			r.Get("/testimonials", a.TestimonialsHandler)
			r.Get("/faqs", a.FAQsHandler)
			r.Get("/contact", a.ContactHandler)
			r.Post("/contact", a.ContactSubmitHandler)
			r.Post("/forms/validate", a.ValidateFieldHandler)

			r.Route("/consultation", func(r chi.Router) {
				r.Get("/", a.ConsultationHandler)
				r.Post("/month", a.ConsultationMonthHandler)
				r.Post("/date", a.ConsultationDateHandler)
				r.Post("/time", a.ConsultationTimeHandler)
				r.Post("/next", a.ConsultationNextHandler)
				r.Post("/back", a.ConsultationBackHandler)
				r.Post("/close", a.ConsultationCloseHandler)
				r.Post("/schedule", a.ConsultationScheduleHandler)
			})

			r.Post("/chat/message", a.ChatMessageHandler)
			r.Post("/chat/quick", a.ChatQuickHandler)
		})

		// The reply wait is bound to the request context; no extra timeout.
		r.Get("/chat/reply", a.ChatReplyHandler)

		r.NotFound(a.NotFoundHandler)
		r.MethodNotAllowed(a.MethodNotAllowedHandler)
	})

	return r
}
