package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskbook/internal/store"
	"github.com/sandeepkv93/taskbook/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	s, err := store.Open(cfg.TaskFilePath)
	m := update.NewModelWithConfig(s, cfg)
	if err != nil {
		// a corrupt task file is recoverable: start empty and surface it
		m.Status = update.StatusBar{
			Text:    fmt.Sprintf("could not load %s: %v (starting with an empty list)", cfg.TaskFilePath, err),
			IsError: true,
		}
	}

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskbook failed: %v\n", err)
		os.Exit(1)
	}
}
