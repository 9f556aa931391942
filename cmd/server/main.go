package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clinivet/gateway/internal/api"
	"github.com/clinivet/gateway/internal/backend"
	"github.com/clinivet/gateway/internal/core/ports"
	"github.com/clinivet/gateway/internal/core/service"
	"github.com/clinivet/gateway/internal/infrastructure/audit"
	"github.com/clinivet/gateway/internal/infrastructure/config"
	redisdb "github.com/clinivet/gateway/internal/infrastructure/db/redis"
	"github.com/clinivet/gateway/internal/infrastructure/localstore"
	"github.com/clinivet/gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET must be set")
	}

	// --- Backend client (shared, attaches the session bearer token) ---
	httpClient := backend.Init(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
	}, log)
	clinic := backend.NewClinicClient(backend.BaseURL(), httpClient)

	// --- Session store: Redis when configured, file store otherwise ---
	var sessions ports.SessionStore
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connection failed")
		}
		defer client.Close()
		sessions = redisdb.NewSessionStore(client, cfg.SessionTTL)
		rdb = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	} else {
		sessions = localstore.New(cfg.SessionFile)
		log.Info().Str("file", cfg.SessionFile).Msg("sessions stored on disk")
	}

	// --- Services ---
	authService := service.NewAuthService(clinic, sessions, cfg.SessionSecret, cfg.SessionTTL)

	// --- Audit trail ---
	dispatcher := audit.NewDispatcher(0, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterDeps{
		Log:            log,
		SessionSecret:  cfg.SessionSecret,
		Sessions:       sessions,
		Clinic:         clinic,
		Auth:           authService,
		Auditor:        dispatcher,
		Redis:          rdb,
		BackendBaseURL: backend.BaseURL(),
		BackendClient:  httpClient,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("gateway listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}
