package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"critter-calc/internal/config"
	"critter-calc/internal/observability"
	"critter-calc/internal/theme"
	"critter-calc/internal/tui"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	themeName := flag.String("theme", cfg.DefaultTheme.Name, fmt.Sprintf("widget theme %v", theme.Names()))
	logPath := flag.String("log", "", "write JSON logs to this file")
	flag.Parse()

	t, err := theme.Lookup(*themeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The terminal belongs to the widget, so logs go to a file or nowhere.
	logger := zap.NewNop()
	if *logPath != "" {
		logger, err = observability.NewFileLogger(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	logger.Info("widget mounted", zap.String("theme", t.Name))

	p := tea.NewProgram(tui.NewModel(t, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("widget failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
