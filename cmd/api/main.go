// Package main provides the entry point for the Barkeep API server: the
// recipe library joined against a bar's bottle inventory, served as a
// browsable, orderable menu.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/barkeep/v1/internal/application/menu"
	"github.com/barkeep/v1/internal/infrastructure/config"
	"github.com/barkeep/v1/internal/infrastructure/http/server"
	"github.com/barkeep/v1/internal/infrastructure/monitoring"
	persistence "github.com/barkeep/v1/internal/infrastructure/persistence/gorm"
	"github.com/barkeep/v1/internal/infrastructure/persistence/sqlite"
	"github.com/barkeep/v1/internal/infrastructure/recipes"
	"github.com/barkeep/v1/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.App.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("Barkeep starting",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("bar", cfg.Bar.Name))

	gormLevel := gormlogger.Warn
	if cfg.App.Debug {
		gormLevel = gormlogger.Info
	}
	db, err := sqlite.SetupDatabase(cfg.Database.Path, gormLevel)
	if err != nil {
		return fmt.Errorf("setup database: %w", err)
	}

	library, err := recipes.NewLibraryFromFile(cfg.Recipes.Path, log)
	if err != nil {
		return fmt.Errorf("load recipe library: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := monitoring.NewMetrics(registry)

	barstockRepo := persistence.NewBarstockRepository(db, log)
	orderRepo := persistence.NewOrderRepository(db, log)
	menuService := menu.NewService(cfg.BarConfig(), barstockRepo, library, orderRepo, log, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := menuService.Regenerate(ctx); err != nil {
		return fmt.Errorf("initial menu generation: %w", err)
	}

	srv := server.NewServer(cfg, log, menuService, registry)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Barkeep stopped")
	return nil
}
