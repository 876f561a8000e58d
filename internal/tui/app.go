package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/clockr/internal/clock"
)

// App is the root Bubble Tea model. It owns the current instant, the
// alarm list and the alert queue; every derived projection (banner,
// world clocks, alarm check) is fed from the single tick below.
type App struct {
	alarms *clock.Manager
	width  int
	height int

	activeView viewState
	showHelp   bool

	// instant is zero until the first tick; the banner renders
	// placeholders instead of a stale value until then.
	instant time.Time

	// ringing holds fired alarms awaiting acknowledgement. While
	// non-empty, a modal is open and tick processing is frozen.
	ringing []clock.Alarm

	world     worldModel
	alarmList alarmsModel

	help   help.Model
	status string
}

func NewApp(panel *clock.Panel, alarms *clock.Manager) App {
	h := help.New()
	h.ShowAll = false

	return App{
		alarms:     alarms,
		activeView: viewWorld,
		world:      newWorldModel(panel),
		alarmList:  newAlarmsModel(alarms),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd schedules the single one-second timer. Both the world-clock
// panel and the alarm check consume the same instant, so the two can
// never drift apart. Rescheduling stops when the program exits.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 8 // header + banner + footer
		a.world.setSize(a.width, contentHeight)
		a.alarmList.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		// An open alert modal suspends all tick processing. Elapsed
		// ticks are dropped, not queued: the first tick after
		// dismissal carries the real wall-clock time.
		if a.alertOpen() {
			return a, tickCmd()
		}
		a.instant = time.Time(msg)
		var cmd tea.Cmd
		a.world, cmd = a.world.update(msg)
		a.ringing = a.alarms.Check(a.instant)
		return a, tea.Batch(tickCmd(), cmd)

	case tea.KeyMsg:
		if a.alertOpen() {
			return a.updateAlert(msg)
		}

		// The add-alarm form captures all input while open.
		if a.alarmList.formActive {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewWorld
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewAlarms
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 2
			return a, nil
		}

	case alarmAddedMsg:
		a.status = "Alarm set for " + msg.time
		return a, nil

	case alarmRemovedMsg:
		a.status = "Alarm deleted"
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewWorld:
		a.world, cmd = a.world.update(msg)
	case viewAlarms:
		a.alarmList, cmd = a.alarmList.update(msg)
	}
	return a, cmd
}

func (a App) alertOpen() bool {
	return len(a.ringing) > 0
}

// updateAlert handles keys while the alert modal is open. Dismissing
// shows the next queued alarm, if several fired on the same tick. The
// alarm itself stays enabled, so it re-fires on the next tick of the
// same minute unless disabled or deleted here.
func (a App) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Back):
		a.ringing = a.ringing[1:]
	case key.Matches(msg, keys.Toggle):
		a.alarms.Toggle(a.ringing[0].ID)
		a.status = "Alarm " + a.ringing[0].Time + " disabled"
		a.ringing = a.ringing[1:]
	case key.Matches(msg, keys.Delete):
		a.alarms.Delete(a.ringing[0].ID)
		a.status = "Alarm " + a.ringing[0].Time + " deleted"
		a.ringing = a.ringing[1:]
	}
	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	banner := a.renderBanner()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewWorld:
		content = a.world.view()
	case viewAlarms:
		content = a.alarmList.view()
	}

	headerHeight := lipgloss.Height(header)
	bannerHeight := lipgloss.Height(banner)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - bannerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.alertOpen() {
		content = a.renderAlert()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, banner, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("clockr")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

// renderBanner draws the always-visible local clock: glyph, HH:MM:SS
// and the long date, tinted with the current day period's accent.
func (a App) renderBanner() string {
	w := a.width - 2

	if a.instant.IsZero() {
		timeLine := bannerTimeStyle.Foreground(colorMuted).Width(w).Render(clock.PlaceholderTime)
		dateLine := bannerDateStyle.Width(w).Render(clock.PlaceholderDate)
		return lipgloss.JoinVertical(lipgloss.Left, timeLine, dateLine)
	}

	period := clock.PeriodOf(a.instant)
	accent := periodColors[period]

	timeLine := bannerTimeStyle.Foreground(accent).Width(w).
		Render(period.Glyph() + "  " + clock.FormatTime(a.instant))
	dateLine := bannerDateStyle.Width(w).Render(clock.FormatDate(a.instant))

	return lipgloss.JoinVertical(lipgloss.Left, timeLine, dateLine)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	armed := ""
	if n := enabledCount(a.alarms.Alarms()); n > 0 {
		armed = successStyle.Render(" ⏰ " + strconv.Itoa(n) + " armed")
	}

	left := footerStyle.Render(helpView)
	right := armed + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderAlert() string {
	cur := a.ringing[0]

	title := errorStyle.Bold(true).Render("⏰ ALARM — " + cur.Time)
	msg := titleStyle.Render(cur.Message())

	queued := ""
	if len(a.ringing) > 1 {
		queued = mutedStyle.Render(strconv.Itoa(len(a.ringing)-1) + " more waiting")
	}

	hint := mutedStyle.Render("enter: dismiss  space: disable  d: delete")
	note := warningStyle.Render("Rings again every second of this minute while enabled.")

	rows := []string{title, "", msg, "", note}
	if queued != "" {
		rows = append(rows, queued)
	}
	rows = append(rows, "", hint)

	w := a.width - 4
	return alertPanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func enabledCount(alarms []clock.Alarm) int {
	n := 0
	for _, a := range alarms {
		if a.Enabled {
			n++
		}
	}
	return n
}
