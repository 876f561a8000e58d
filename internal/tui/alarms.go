package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clockr/internal/clock"
)

// alarmsModel renders the alarm list and hosts the add-alarm form. The
// list itself lives in the clock.Manager; this model only tracks the
// cursor and the pending form inputs.
type alarmsModel struct {
	alarms *clock.Manager
	width  int
	height int

	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTime  *string
	formLabel *string
}

func newAlarmsModel(m *clock.Manager) alarmsModel {
	t, l := "", ""
	return alarmsModel{
		alarms:    m,
		formTime:  &t,
		formLabel: &l,
	}
}

func (m *alarmsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m alarmsModel) update(msg tea.Msg) (alarmsModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.updateList(msg)
	}
	return m, nil
}

func (m alarmsModel) updateList(msg tea.KeyMsg) (alarmsModel, tea.Cmd) {
	n := m.alarms.Len()

	// The list can shrink behind this model (deleting a ringing alarm
	// from the alert modal), leaving the cursor past the end.
	if m.cursor > n-1 {
		m.cursor = max(0, n-1)
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Add):
		return m.showAddForm()
	case key.Matches(msg, keys.Toggle), key.Matches(msg, keys.Enter):
		if n > 0 {
			m.alarms.Toggle(m.alarms.Alarms()[m.cursor].ID)
		}
	case key.Matches(msg, keys.Delete):
		if n > 0 {
			m.alarms.Delete(m.alarms.Alarms()[m.cursor].ID)
			if m.cursor >= m.alarms.Len() {
				m.cursor = max(0, m.alarms.Len()-1)
			}
			return m, func() tea.Msg { return alarmRemovedMsg{} }
		}
	}
	return m, nil
}

func (m alarmsModel) showAddForm() (alarmsModel, tea.Cmd) {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Time (HH:MM)").Value(m.formTime),
			huh.NewInput().Title("Label").Value(m.formLabel),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m alarmsModel) updateForm(msg tea.Msg) (alarmsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submit()
	}

	return m, cmd
}

// submit closes the form and hands the pending inputs to the manager.
// An empty or malformed time is silently ignored; the pending inputs
// are only cleared when an alarm was actually added.
func (m alarmsModel) submit() (alarmsModel, tea.Cmd) {
	m.formActive = false
	m.form = nil

	a, ok := m.alarms.Add(*m.formTime, *m.formLabel)
	if !ok {
		return m, nil
	}

	*m.formTime = ""
	*m.formLabel = ""
	m.cursor = m.alarms.Len() - 1
	return m, func() tea.Msg { return alarmAddedMsg{time: a.Time} }
}

func (m alarmsModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Alarm")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Alarms")
	list := m.alarms.Alarms()

	if len(list) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No alarms yet. Press a to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-8s %-24s %s", "Time", "Label", "State"))
	rows = append(rows, header)

	for i, a := range list {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		state := successStyle.Render("● on")
		if !a.Enabled {
			state = mutedStyle.Render("○ off")
		}

		label := a.Label
		if label == "" {
			label = mutedStyle.Render("(no label)")
		}

		rows = append(rows, style.Render(fmt.Sprintf("%s%-8s ", cursor, a.Time))+
			fmt.Sprintf("%-24s ", label)+state)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  a: add  space: toggle  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
