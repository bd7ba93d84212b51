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

	"github.com/iwvelando/unit-economics/internal/config"
	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/internal/logging"
	"github.com/iwvelando/unit-economics/internal/server"
	"github.com/iwvelando/unit-economics/internal/store"
	"github.com/iwvelando/unit-economics/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	modelLocation := flag.String("model", "", "path to a model configuration file used as the initial workspace")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": %q}\n", *configLocation, err.Error())
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging, "")
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": %q}\n", err.Error())
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	model := economics.DefaultModel()
	if *modelLocation != "" {
		conf, err := config.LoadConfiguration(*modelLocation)
		if err != nil {
			logger.Fatal("failed to load model configuration",
				zap.String("op", "main"),
				zap.String("path", *modelLocation),
				zap.Error(err),
			)
		}
		model = conf.Model
		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snapshots, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		logger.Warn("snapshot store unavailable, snapshot endpoints disabled",
			zap.String("op", "main"),
			zap.String("backend", cfg.Storage.Backend),
			zap.Error(err),
		)
	} else {
		defer func() {
			_ = snapshots.Close()
		}()
	}

	handler := server.NewHandler(server.Options{
		Logger:            logger,
		Store:             snapshots,
		Model:             model,
		MaxUploadSize:     cfg.UploadSizeBytes(),
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		Version:           version,
	})

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.String("version", version),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	case <-ctx.Done():
		logger.Info("shutting down",
			zap.String("op", "main"),
		)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
