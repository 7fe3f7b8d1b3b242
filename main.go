// main.go
package main

import (
	"TUI_channel_filter/infrastructure/config"
	"TUI_channel_filter/infrastructure/logger"
	"TUI_channel_filter/infrastructure/provider"
	"TUI_channel_filter/internal/core/usecases"
	"TUI_channel_filter/internal/handler/tui"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

const envFilePath = ".env"

func main() {
	cfg, err := config.Load(envFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	appLogger, err := logger.NewFileLogger(cfg.LogDir, "channel_filter_tui", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()
	appLogger.Info("Application starting...")

	// Initialize Services
	youtubeProvider := provider.NewYoutubeProvider(cfg.APIKey, cfg.RequestsPerSecond, appLogger)
	catalogUseCase := usecases.NewVideoCatalogUseCase(youtubeProvider, appLogger, cfg.MinDurationSeconds)

	initialModel := tui.NewAppModel(catalogUseCase, appLogger, cfg.ChannelID, cfg.Keywords)

	// Start Bubble Tea program
	p := tea.NewProgram(initialModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		appLogger.Error("Error running TUI program", err)
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	appLogger.Info("Application finished.")
}
