package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/craftcloud/configurator-api/internal/adapter"
	"github.com/craftcloud/configurator-api/internal/api/server"
	"github.com/craftcloud/configurator-api/internal/config"
	"github.com/craftcloud/configurator-api/internal/datatable"
	"github.com/craftcloud/configurator-api/internal/logger"
	"github.com/craftcloud/configurator-api/internal/providers/threekit"
	"github.com/craftcloud/configurator-api/internal/repository"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "configurator-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting configurator API",
		zap.String("environment", cfg.Threekit.Environment),
	)

	// Wire the upstream datatable store client and the repositories
	httpClient := adapter.NewHTTPClient(cfg.Threekit.HTTPTimeout)
	clock := adapter.NewClock()

	tableClient := threekit.NewClient(
		httpClient,
		cfg.Threekit.BaseURL(),
		cfg.Threekit.OrgID,
		cfg.Threekit.Token,
		cfg.Threekit.PageSize,
	)
	updater := datatable.NewUpdater(tableClient)

	stores := repository.NewStoreRepository(tableClient, updater, clock)
	configurations := repository.NewConfigurationRepository(tableClient, updater, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Create and start server
	srv := server.New(serverConfig, stores, configurations)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "shutdown"))
	}

	logger.Info("API server stopped")
}
