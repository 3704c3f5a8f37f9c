// Command biolib-server provides a REST API for biolib operations.
//
// Usage:
//
//	biolib-server [options]
//
// Options:
//
//	-config   Path to a YAML config file (default: biolib.yaml)
//	-port     Port to listen on, overrides the config file
//	-host     Host to bind to, overrides the config file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aria-lang/biolib-go/api/handlers"
	"github.com/aria-lang/biolib-go/api/middleware"
	"github.com/aria-lang/biolib-go/internal/config"
	"github.com/aria-lang/biolib-go/internal/logging"
	"github.com/aria-lang/biolib-go/internal/palindrome"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to config file")
	port := flag.Int("port", 0, "Port to listen on")
	host := flag.String("host", "", "Host to bind to")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *host != "" {
		cfg.Server.Host = *host
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// newRouter wires middleware and handlers.
func newRouter(cfg *config.Config, logger *zap.Logger) http.Handler {
	scanner := palindrome.NewScanner(
		palindrome.WithWorkers(cfg.Scanner.Workers),
		palindrome.WithBatchSize(cfg.Scanner.BatchSize),
		palindrome.WithLogger(logger.Named("palindrome")),
	)
	h := handlers.New(scanner, logger.Named("handlers"))

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger.Named("http")))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.Duration(cfg.Server.RequestTimeout, 60*time.Second)))
	r.Use(middleware.MaxBody(cfg.Server.MaxBodyBytes))

	h.Mount(r)
	return r
}

func run(cfg *config.Config, logger *zap.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(cfg, logger),
		ReadTimeout:  config.Duration(cfg.Server.ReadTimeout, 15*time.Second),
		WriteTimeout: config.Duration(cfg.Server.WriteTimeout, 15*time.Second),
		IdleTimeout:  config.Duration(cfg.Server.IdleTimeout, 60*time.Second),
	}

	// Graceful shutdown
	done := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(),
			config.Duration(cfg.Server.ShutdownTimeout, 30*time.Second))
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		done <- server.Shutdown(ctx)
	}()

	logger.Info("biolib API server starting", zap.String("addr", "http://"+addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not listen on %s: %w", addr, err)
	}

	if err := <-done; err != nil {
		return fmt.Errorf("could not gracefully shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
