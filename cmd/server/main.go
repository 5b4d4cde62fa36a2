package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/light-bringer/order-management-service/internal/config"
	"github.com/light-bringer/order-management-service/internal/services"
	transport "github.com/light-bringer/order-management-service/internal/transport/http"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	if err := run(); err != nil {
		log.WithField("err", err).Fatal("failed to run server")
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"spannerDB": cfg.SpannerDB,
		"httpPort":  cfg.HTTPPort,
	}).Info("starting order management service")

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Build the HTTP server
	router := transport.NewRouter(serviceOpts.ProductsHandler, serviceOpts.OrdersHandler)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	// 4. Start HTTP server in background
	go func() {
		log.WithField("port", cfg.HTTPPort).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithField("err", err).Error("HTTP server error")
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down gracefully")

	if err := httpServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}
