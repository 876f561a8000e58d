package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestAddRejectsBadTimes: empty or malformed times are silent no-ops.
func TestAddRejectsBadTimes(t *testing.T) {
	t.Parallel()

	m := NewManager()
	for _, bad := range []string{"", "7:30", "24:00", "12:60", "0730", "ab:cd", "12:3"} {
		_, ok := m.Add(bad, "x")
		require.False(t, ok, "time %q", bad)
	}
	require.Equal(t, 0, m.Len())
}

func TestAddAppendsEnabled(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a, ok := m.Add("09:00", "Meeting")
	require.True(t, ok)
	require.True(t, a.Enabled)
	require.Equal(t, "09:00", a.Time)
	require.Equal(t, "Meeting", a.Label)
	require.NotEmpty(t, a.ID)

	b, ok := m.Add("07:30", "")
	require.True(t, ok)
	require.NotEqual(t, a.ID, b.ID)

	list := m.Alarms()
	require.Len(t, list, 2)
	// Insertion order is display order.
	require.Equal(t, a.ID, list[0].ID)
	require.Equal(t, b.ID, list[1].ID)
}

// TestIDsUnique: ids come from the creation timestamp but must never
// collide, even for a burst of adds within one nanosecond tick.
func TestIDsUnique(t *testing.T) {
	t.Parallel()

	m := NewManager()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		a, ok := m.Add("12:00", "")
		require.True(t, ok)
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

// TestToggleRoundTrip: toggling twice restores the original state.
func TestToggleRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a, _ := m.Add("07:30", "")

	require.True(t, m.Toggle(a.ID))
	require.False(t, m.Alarms()[0].Enabled)

	require.True(t, m.Toggle(a.ID))
	require.True(t, m.Alarms()[0].Enabled)
}

func TestToggleUnknownID(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.Add("07:30", "")
	require.False(t, m.Toggle("nope"))
	require.True(t, m.Alarms()[0].Enabled)
}

// TestDeleteIdempotent: delete then toggle/delete of the same id are
// no-ops.
func TestDeleteIdempotent(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a, _ := m.Add("07:30", "")
	b, _ := m.Add("08:00", "other")

	require.True(t, m.Delete(a.ID))
	require.Equal(t, 1, m.Len())

	require.False(t, m.Delete(a.ID))
	require.False(t, m.Toggle(a.ID))
	require.Equal(t, 1, m.Len())
	require.Equal(t, b.ID, m.Alarms()[0].ID)
}

// TestCheckFiresEveryTickOfTheMinute documents the repeat-fire
// behavior: the comparison truncates seconds, so an enabled alarm
// matches on all 60 ticks of its minute and stops at the next minute.
func TestCheckFiresEveryTickOfTheMinute(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a, _ := m.Add("07:30", "wake")

	base := time.Date(2025, time.March, 14, 7, 30, 0, 0, time.Local)
	for s := 0; s < 60; s++ {
		fired := m.Check(base.Add(time.Duration(s) * time.Second))
		require.Len(t, fired, 1, "second %d", s)
		require.Equal(t, a.ID, fired[0].ID)
	}

	require.Empty(t, m.Check(base.Add(time.Minute)))
	require.Empty(t, m.Check(base.Add(-time.Second)))
}

// TestCheckSkipsDisabled: disabled alarms never fire.
func TestCheckSkipsDisabled(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a, _ := m.Add("09:00", "Meeting")
	require.True(t, m.Toggle(a.ID))

	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.Local)
	require.Empty(t, m.Check(now))

	// Re-enable and it fires again.
	require.True(t, m.Toggle(a.ID))
	fired := m.Check(now)
	require.Len(t, fired, 1)
	require.Equal(t, "Meeting", fired[0].Message())
}

// TestCheckMultipleMatches: every enabled alarm on the same minute
// fires on the same tick, in insertion order.
func TestCheckMultipleMatches(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a, _ := m.Add("06:15", "first")
	b, _ := m.Add("06:15", "second")
	m.Add("06:16", "later")

	now := time.Date(2025, time.March, 14, 6, 15, 30, 0, time.Local)
	fired := m.Check(now)
	require.Len(t, fired, 2)
	require.Equal(t, a.ID, fired[0].ID)
	require.Equal(t, b.ID, fired[1].ID)
}

func TestAlarmMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "time to wake up", Alarm{}.Message())
	require.Equal(t, "Meeting", Alarm{Label: "Meeting"}.Message())
}

func TestAlarmsReturnsCopy(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.Add("10:00", "")

	list := m.Alarms()
	list[0].Enabled = false
	require.True(t, m.Alarms()[0].Enabled)
}
