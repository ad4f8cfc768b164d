package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/handlers"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/mailer"
	"github.com/Zachkp/portfolio/internal/services"
	"github.com/Zachkp/portfolio/internal/storage"
	"github.com/Zachkp/portfolio/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(false).Fatalw("failed to load config", "error", err)
	}

	log := logger.New(cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	store, err := storage.Open(storage.Config{
		Driver:   cfg.Storage.Driver,
		DSN:      cfg.Storage.DSN,
		CacheTTL: cfg.Storage.CacheTTL,
	})
	if err != nil {
		log.Fatalw("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
	}
	defer store.Close()

	// A nil *ContactMailer must not become a non-nil Notifier.
	var notifier services.Notifier
	if m := mailer.New(cfg.SMTP); m != nil {
		notifier = m
	} else {
		log.Infow("SMTP credentials not configured, contact e-mails disabled")
	}

	svc := services.New(storage.NewGateway(store), services.Options{
		Logger:       log,
		Notifier:     notifier,
		ContactDelay: cfg.ContactDelay,
	})

	r, err := newRouter(cfg, svc, log)
	if err != nil {
		log.Fatalw("failed to build router", "error", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infow("starting server", "port", cfg.Port, "env", cfg.AppEnv, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-quit
	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("error during shutdown", "error", err)
	}
	svc.Messages.Wait()
	log.Infow("server gracefully stopped")
}

func newRouter(cfg *config.Config, svc *services.Services, log *zap.SugaredLogger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := views.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(log))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(views.Static()))
	if cfg.StaticDir != "" {
		r.Static("/images", cfg.StaticDir)
	}

	tracker, err := newVisitorTracker(svc, log)
	if err != nil {
		return nil, err
	}
	handlers.NewPublicHandler(svc, defaultProfile, log).RegisterRoutes(r.Group("/", tracker.Middleware()))
	setupAdminRoutes(r, svc, log)

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", views.ErrorView{
			Status:  http.StatusNotFound,
			Message: "The page you requested does not exist.",
			Back:    "/",
		})
	})

	return r, nil
}
