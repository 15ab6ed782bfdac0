// @title Pet Adoption API
// @version 1.0
// @description Interesse de adoção: fila por animal, avaliação pela ONG e acompanhamento pelo adotante.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"pet-adoption/internal/adapters/auth/odin"
	"pet-adoption/internal/adapters/messaging/kafka"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/app"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/observability"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/router"
)

const serviceName = "pet-adoption-api"

func main() {
	log := logger.NewFromEnv()
	if err := run(log); err != nil {
		log.Error("server exited", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(log logger.Logger) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instruments, shutdownOTel, err := observability.Init(ctx, serviceName, cfg.OTelDisabled, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn("failed to shutdown observability", map[string]any{"error": err.Error()})
		}
	}()

	db := openDB(ctx, cfg, log)
	if db != nil {
		defer db.Close()
	}

	publisher := adoption.NoopPublisher()
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publisher = kp
		log.Info("kafka publisher enabled", map[string]any{"topic": cfg.KafkaTopic})
	}

	verifier, err := buildVerifier(cfg, instruments)
	if err != nil {
		return err
	}
	if verifier == nil {
		log.Warn("ODIN_BASE_URL not set, accepting X-Debug-User-* headers", nil)
	}

	handler := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Logger:       log,
		Publisher:    publisher,
		Instruments:  instruments,
	})

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: otelhttp.NewHandler(handler, serviceName,
			otelhttp.WithTracerProvider(instruments.TracerProvider),
			otelhttp.WithMeterProvider(instruments.MeterProvider),
		),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.HTTPTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", map[string]any{"timeout": cfg.ShutdownTimeout.String()})
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

// openDB: sin DB_DSN o si falla la conexión => in-memory.
func openDB(ctx context.Context, cfg app.Config, log logger.Logger) *sql.DB {
	if cfg.DBDSN == "" {
		log.Warn("DB_DSN not set, using in-memory repositories", nil)
		return nil
	}
	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		log.Warn("failed to connect to postgres, using in-memory repositories", map[string]any{"error": err.Error()})
		return nil
	}
	if err := pg.Migrate(ctx, db); err != nil {
		log.Warn("failed to migrate postgres, using in-memory repositories", map[string]any{"error": err.Error()})
		_ = db.Close()
		return nil
	}
	log.Info("repositories configured with postgres", nil)
	return db
}

func buildVerifier(cfg app.Config, instruments *observability.Instruments) (auth.AuthVerifier, error) {
	if cfg.DevAuth() {
		return nil, nil
	}
	client, err := odin.NewClient(odin.Config{
		BaseURL: cfg.OdinBaseURL,
		APIKey:  cfg.OdinAPIKey,
		Timeout: cfg.HTTPTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithTracerProvider(instruments.TracerProvider),
		),
	})
	if err != nil {
		return nil, err
	}
	return odin.NewVerifier(client), nil
}
