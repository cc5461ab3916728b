package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/agrotools/feedlot-calc/internal/config"
	"github.com/agrotools/feedlot-calc/internal/export"
	"github.com/agrotools/feedlot-calc/internal/logger"
	"github.com/agrotools/feedlot-calc/internal/storage/sqlite"
	"github.com/agrotools/feedlot-calc/internal/ui"
	"github.com/agrotools/feedlot-calc/internal/ui/screen"
)

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Logs go to the in-memory buffer only; stdout belongs to the TUI.
	buffer := logger.NewLogBuffer(512)
	appLogger, err := logger.CreateTUILogger(cfg.DebugLogging, buffer)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	store, err := sqlite.NewStorage(cfg.DatabasePath, appLogger)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	if err := store.RunMigrations(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	services := &ui.Services{
		Store:    store,
		Exporter: export.NewExporter(appLogger),
		Logger:   appLogger,
		Buffer:   buffer,
		Config:   cfg,
	}

	appLogger.Info("starting feedlot calculator",
		zap.String("db", cfg.DatabasePath),
		zap.String("export_dir", cfg.ExportDir))

	program := tea.NewProgram(
		screen.NewApp(services),
		tea.WithAltScreen(),
		tea.WithContext(rootCtx),
	)

	if _, err := program.Run(); err != nil && rootCtx.Err() == nil {
		appLogger.Error("tui exited with error", zap.Error(err))
	}

	appLogger.Info("shutting down")
}
