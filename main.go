package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"trendscope/internal/api"
	"trendscope/internal/config"
	"trendscope/internal/export"
	"trendscope/internal/observability"
	"trendscope/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment and flags cover everything.
	_ = godotenv.Load()

	cfg := config.NewConfig()
	if err := cfg.ParseFlags(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := observability.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	logger.Info("starting trendscope",
		"backend", cfg.BackendURL,
		"source", string(cfg.SourceSystem),
		"timeout", cfg.RequestTimeout.String())

	client := api.New(cfg.BackendURL, cfg.RequestTimeout, logger)
	exporter := export.NewExporter(cfg.ExportDir)

	model := tui.NewModel(client, exporter, logger, cfg.SourceSystem, cfg.RequestTimeout)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run console: %w", err)
	}

	logger.Info("trendscope exited")
	return nil
}
