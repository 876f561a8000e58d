package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clockr/internal/clock"
)

// worldModel renders the fixed world-clock panel. The rows are
// recomputed from each tick's instant; the city set never changes.
type worldModel struct {
	panel  *clock.Panel
	width  int
	height int

	rows []clock.CityTime
}

func newWorldModel(p *clock.Panel) worldModel {
	return worldModel{panel: p}
}

func (w *worldModel) setSize(width, height int) {
	w.width = width
	w.height = height
}

func (w worldModel) update(msg tea.Msg) (worldModel, tea.Cmd) {
	if msg, ok := msg.(tickMsg); ok {
		w.rows = w.panel.Times(time.Time(msg))
	}
	return w, nil
}

func (w worldModel) view() string {
	width := w.width - 4
	title := titleStyle.Render("World Clock")

	if len(w.rows) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("Waiting for first tick…"),
		)
		return panelStyle.Width(width).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-14s %-12s %-10s", "City", "Time", "Offset"))
	rows = append(rows, header)

	for _, ct := range w.rows {
		glyph := lipgloss.NewStyle().Foreground(periodColors[ct.Period]).Render(ct.Period.Glyph())
		rows = append(rows, fmt.Sprintf("  %-14s %s %-10s %s",
			ct.Name, highlightStyle.Render(fmt.Sprintf("%-12s", ct.Time)), ct.Offset, glyph))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  2: alarms  tab: next view"))

	return panelStyle.Width(width).Render(strings.Join(rows, "\n"))
}
