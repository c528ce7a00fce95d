// Command server runs the customer API.
//
// @title                       Customer API
// @version                     1.0
// @description                 Account registration, bearer-token login and customer records.
// @host                        localhost:8000
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/Farhadhossain379/pythonFastApi/docs"
	"github.com/Farhadhossain379/pythonFastApi/internal/api"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/service"
	"github.com/Farhadhossain379/pythonFastApi/internal/infrastructure/config"
	"github.com/Farhadhossain379/pythonFastApi/internal/infrastructure/db/redis"
	"github.com/Farhadhossain379/pythonFastApi/internal/infrastructure/keystore"
	"github.com/Farhadhossain379/pythonFastApi/internal/infrastructure/seed"
	"github.com/Farhadhossain379/pythonFastApi/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, ".env")
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "customer-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	key, source, err := keystore.Load(cfg.Auth.SecretKey, cfg.Auth.SecretKeyFile)
	if err != nil {
		return err
	}
	log.Info().Str("source", string(source)).Msg("signing key loaded")

	hasher, err := service.NewCredentialHasher(cfg.Auth.PasswordScheme)
	if err != nil {
		return err
	}
	tokens := service.NewTokenService(key, cfg.Auth.TokenTTL)

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.close(closeCtx); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	health := []ports.HealthChecker{store.health}

	var limiter ports.LoginLimiter
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		limiter = redis.NewLoginLimiter(client, redis.LimiterConfig{
			MaxAttempts:   cfg.Login.MaxAttempts,
			AttemptWindow: cfg.Login.AttemptWindow,
			LockDuration:  cfg.Login.LockDuration,
		})
		health = append(health, redis.NewPinger(client))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login throttling enabled")
	}

	authSvc := service.NewAuthService(store.directory, hasher, tokens, log)
	customerSvc := service.NewCustomerService(store.customers, log)

	if cfg.SeedUsersPath != "" {
		entries, err := seed.LoadUsers(cfg.SeedUsersPath)
		if err != nil {
			return err
		}
		n, err := seed.Users(ctx, authSvc, entries, log)
		if err != nil {
			return err
		}
		log.Info().Int("created", n).Int("entries", len(entries)).Msg("seed users applied")
	}

	e := api.NewRouter(api.Dependencies{
		Logger:         log,
		Auth:           authSvc,
		Customers:      customerSvc,
		Tokens:         tokens,
		Limiter:        limiter,
		Health:         health,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
