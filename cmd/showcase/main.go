package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/neunato/zed/components/all"
	"github.com/neunato/zed/internal/component"
	"github.com/neunato/zed/internal/infrastructure/config"
	"github.com/neunato/zed/internal/logging"
	"github.com/neunato/zed/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewDefault()
	}
	defer log.Sync() //nolint:errcheck

	// Assemble the catalog from every linked component package.
	component.Init()
	snapshot := component.Components()
	log.Info("catalog assembled",
		zap.Int("components", snapshot.Len()),
		zap.Int("previews", len(snapshot.AllPreviews())),
	)

	srv := server.New(cfg, component.Default, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	case err := <-errChan:
		log.Fatal("server error", zap.Error(err))
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.LoadOrDefault()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		logging.NewDefault().Warn("failed to load config file, using defaults", zap.Error(err))
		return config.LoadOrDefault()
	}
	return cfg
}
