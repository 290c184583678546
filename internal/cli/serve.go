package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/kje7713-dev/Grappling-Chainz/internal/logging"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/adapters/httpapi"
)

// ServeConfig is the HTTP server configuration, read from the environment
// with flag overrides applied on top.
type ServeConfig struct {
	Addr            string        `env:"CHAINZ_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"CHAINZ_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadServeConfig parses the server configuration from the environment.
func LoadServeConfig() (ServeConfig, error) {
	cfg, err := env.ParseAs[ServeConfig]()
	if err != nil {
		return ServeConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// RunServe hosts the HTTP adapter until SIGINT/SIGTERM.
func RunServe(cfg ServeConfig, opts RunOptions) error {
	engine, err := NewEngine(opts)
	if err != nil {
		return err
	}

	logger := logging.New(slog.LevelInfo)
	handler := httpapi.NewHandler(engine, httpapi.WithLogger(logger))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", cfg.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal received")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}
