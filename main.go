package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/segmented/internal/app"
	"github.com/llehouerou/segmented/internal/config"
	"github.com/llehouerou/segmented/internal/ui/styles"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if theme, ok := cfg.ThemeOverride(); ok {
		restore := styles.Override(theme)
		defer restore()
	}

	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
