package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/clockr/internal/clock"
	"github.com/sadopc/clockr/internal/tui"
)

func main() {
	// The city set is a fixed constant; a zone that fails to resolve
	// is a broken build, not a runtime condition.
	panel, err := clock.NewPanel(clock.DefaultCities())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading timezones: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(panel, clock.NewManager())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
