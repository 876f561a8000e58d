package clock

import (
	"regexp"
	"strconv"
	"time"
)

// Alarm is a user-defined wake-up: a wall-clock minute, an optional
// label and an enabled flag. Alarms live only in memory; they do not
// survive a restart.
type Alarm struct {
	ID      string
	Time    string // zero-padded 24-hour "HH:MM"
	Label   string // may be empty
	Enabled bool
}

// DefaultAlarmMessage is shown when a firing alarm has no label.
const DefaultAlarmMessage = "time to wake up"

var alarmTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidAlarmTime reports whether s is a zero-padded 24-hour HH:MM string.
func ValidAlarmTime(s string) bool {
	return alarmTimePattern.MatchString(s)
}

// Manager owns the alarm list. It is not safe for concurrent use; the
// UI loop is its only caller.
type Manager struct {
	alarms []Alarm
	lastID int64
}

func NewManager() *Manager {
	return &Manager{}
}

// Add appends a new enabled alarm and returns it. An empty or malformed
// time is silently ignored and ok is false; there is no error channel
// to the user for bad input.
func (m *Manager) Add(timeStr, label string) (Alarm, bool) {
	if !ValidAlarmTime(timeStr) {
		return Alarm{}, false
	}
	a := Alarm{
		ID:      m.nextID(),
		Time:    timeStr,
		Label:   label,
		Enabled: true,
	}
	m.alarms = append(m.alarms, a)
	return a, true
}

// Toggle flips the enabled flag of the alarm with the given id. Unknown
// ids are a no-op and return false.
func (m *Manager) Toggle(id string) bool {
	for i := range m.alarms {
		if m.alarms[i].ID == id {
			m.alarms[i].Enabled = !m.alarms[i].Enabled
			return true
		}
	}
	return false
}

// Delete removes the alarm with the given id. Deleting an unknown id is
// a no-op, so deletion is idempotent.
func (m *Manager) Delete(id string) bool {
	for i := range m.alarms {
		if m.alarms[i].ID == id {
			m.alarms = append(m.alarms[:i], m.alarms[i+1:]...)
			return true
		}
	}
	return false
}

// Check compares every enabled alarm against the instant's HH:MM and
// returns the ones that match. Seconds are truncated, so a matching
// alarm fires on every tick of its minute until it is disabled or
// deleted; callers must not expect a one-shot.
func (m *Manager) Check(now time.Time) []Alarm {
	minute := FormatMinute(now)
	var fired []Alarm
	for _, a := range m.alarms {
		if a.Enabled && a.Time == minute {
			fired = append(fired, a)
		}
	}
	return fired
}

// Alarms returns a copy of the list in insertion order.
func (m *Manager) Alarms() []Alarm {
	out := make([]Alarm, len(m.alarms))
	copy(out, m.alarms)
	return out
}

func (m *Manager) Len() int {
	return len(m.alarms)
}

// nextID derives an id from the creation timestamp. Two alarms created
// within the same nanosecond would collide, so the last id is bumped
// instead of reused.
func (m *Manager) nextID() string {
	id := time.Now().UnixNano()
	if id <= m.lastID {
		id = m.lastID + 1
	}
	m.lastID = id
	return strconv.FormatInt(id, 10)
}

// Message returns the alert text for a firing alarm.
func (a Alarm) Message() string {
	if a.Label == "" {
		return DefaultAlarmMessage
	}
	return a.Label
}
