package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/ngmaloney/velib-terminal/internal/config"
	"github.com/ngmaloney/velib-terminal/internal/dashboard"
	"github.com/ngmaloney/velib-terminal/internal/logging"
	"github.com/ngmaloney/velib-terminal/internal/store"
	"github.com/ngmaloney/velib-terminal/internal/ui"
	"github.com/ngmaloney/velib-terminal/internal/velib"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("velib-terminal", os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	// The TUI owns the terminal, so logs only go to a file
	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	client := velib.NewClient(velib.ClientConfig{
		BaseURL: cfg.APIURL,
		Dataset: cfg.Dataset,
		Rows:    cfg.Rows,
		Timeout: cfg.Timeout,
		Logger:  logger,
	})
	controller := dashboard.NewController(store.New(), cfg.PageSize, logger)

	logger.Info("starting", "url", cfg.APIURL, "dataset", cfg.Dataset, "rows", cfg.Rows)

	p := tea.NewProgram(ui.NewModel(client, controller, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
