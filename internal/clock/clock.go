// Package clock holds the time-keeping core of clockr: formatting of
// the current instant, day-period derivation, the fixed world-clock
// panel and the alarm list. It has no knowledge of the terminal UI.
package clock

import "time"

// Placeholder strings rendered before the first tick delivers an instant.
const (
	PlaceholderTime = "--:--:--"
	PlaceholderDate = "---"
)

// FormatTime renders an instant as zero-padded 24-hour HH:MM:SS.
func FormatTime(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatMinute renders an instant as zero-padded 24-hour HH:MM. This is
// the key alarms are compared against, so seconds are truncated.
func FormatMinute(t time.Time) string {
	return t.Format("15:04")
}

// FormatDate renders the long date line shown under the main clock.
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
