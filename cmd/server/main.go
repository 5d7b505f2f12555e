package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookvault/internal/config"
	"bookvault/internal/crypto"
	"bookvault/internal/logging"
	"bookvault/internal/services"
	"bookvault/internal/storage/postgres"
	"bookvault/internal/token"
	"bookvault/internal/web"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	// An unset signing secret is a configuration fault; fail here, not on
	// the first login.
	tokens, err := token.New(cfg.SecretKey, cfg.TokenValidity)
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN); err != nil {
		return err
	}

	db := postgres.New(pool)
	srv, err := web.NewServer(
		services.NewAuthService(db, crypto.NewBcrypt(cfg.BcryptCost), tokens),
		services.NewBookService(db),
		tokens,
		log,
	)
	if err != nil {
		return err
	}

	app := fiber.New()
	app.Use(fiberlogger.New())
	srv.RegisterRoutes(app)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Address)
	}()
	log.Info(ctx, "server started", "addr", cfg.Address)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info(ctx, "shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}
