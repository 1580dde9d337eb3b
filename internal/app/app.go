package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/kirana-labs/kirana-backend/internal/adapter/audiocache"
	"github.com/kirana-labs/kirana-backend/internal/adapter/postgres"
	orderrepo "github.com/kirana-labs/kirana-backend/internal/adapter/postgres/order"
	profilerepo "github.com/kirana-labs/kirana-backend/internal/adapter/postgres/profile"
	"github.com/kirana-labs/kirana-backend/internal/adapter/provider/classifier"
	"github.com/kirana-labs/kirana-backend/internal/adapter/provider/whisper"
	"github.com/kirana-labs/kirana-backend/internal/adapter/twilio"
	"github.com/kirana-labs/kirana-backend/internal/config"
	"github.com/kirana-labs/kirana-backend/internal/service/notify"
	"github.com/kirana-labs/kirana-backend/internal/service/onboarding"
	"github.com/kirana-labs/kirana-backend/internal/service/order"
	"github.com/kirana-labs/kirana-backend/internal/service/router"
	"github.com/kirana-labs/kirana-backend/internal/session"
	"github.com/kirana-labs/kirana-backend/internal/transport/middleware"
	"github.com/kirana-labs/kirana-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes the
// logger, connects to the database, wires the conversation pipeline, and
// serves HTTP until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	// Adapters.
	profiles := profilerepo.New(pool)
	orders := orderrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	twilioClient := twilio.NewClient(cfg.Twilio, logger)
	transcriber := whisper.NewProvider(cfg.Whisper, logger)
	grocery := classifier.NewProvider(cfg.Classifier, logger)

	audioStore, err := audiocache.New(cfg.Audio.CacheDir)
	if err != nil {
		return fmt.Errorf("init audio cache: %w", err)
	}

	// Core pipeline.
	sessions := session.NewStore()
	onboard := onboarding.NewService(logger, sessions, profiles)
	builder := order.NewService(logger, grocery, orders, profiles, txManager)
	dispatcher := notify.NewService(logger, profiles, orders, twilioClient, cfg.Notify.TestRecipients)
	msgRouter := router.NewService(router.Deps{
		Logger:      logger,
		Sessions:    sessions,
		Profiles:    profiles,
		Onboarding:  onboard,
		Builder:     builder,
		Dispatcher:  dispatcher,
		Transcriber: transcriber,
		Media:       twilioClient,
		Audio:       audioStore,
		Language:    cfg.Whisper.Language,
	})

	// HTTP surface.
	webhookLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer webhookLimiter.Stop()

	webhook := rest.NewWebhookHandler(msgRouter, logger)
	admin := rest.NewAdminHandler(orders, profiles, logger)
	health := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.Handle("POST /whatsapp", webhookLimiter.Limit(cfg.Server.WebhookPerMin)(http.HandlerFunc(webhook.Handle)))
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)
	admin.Register(mux)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
