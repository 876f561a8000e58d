package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewPanelDefaultCities ensures the fixed zone set resolves.
func TestNewPanelDefaultCities(t *testing.T) {
	t.Parallel()

	p, err := NewPanel(DefaultCities())
	require.NoError(t, err)

	rows := p.Times(time.Now())
	require.Len(t, rows, 4)
	require.Equal(t, "New York", rows[0].Name)
	require.Equal(t, "London", rows[1].Name)
	require.Equal(t, "Tokyo", rows[2].Name)
	require.Equal(t, "Sydney", rows[3].Name)
}

// TestNewPanelBadZone: an unknown identifier is a startup error.
func TestNewPanelBadZone(t *testing.T) {
	t.Parallel()

	_, err := NewPanel([]City{{Name: "Atlantis", Zone: "Atlantis/Lost"}})
	require.Error(t, err)
	require.ErrorContains(t, err, "Atlantis/Lost")
}

// TestTimesFixedInstant pins the rendered strings for a known UTC
// instant. 2025-01-15 is outside DST everywhere in the panel.
func TestTimesFixedInstant(t *testing.T) {
	t.Parallel()

	p, err := NewPanel(DefaultCities())
	require.NoError(t, err)

	instant := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	rows := p.Times(instant)

	require.Equal(t, "07:00:00", rows[0].Time) // New York, UTC-5
	require.Equal(t, "UTC-5", rows[0].Offset)
	require.Equal(t, "12:00:00", rows[1].Time) // London, UTC+0
	require.Equal(t, "21:00:00", rows[2].Time) // Tokyo, UTC+9
	require.Equal(t, "UTC+9", rows[2].Offset)
	require.Equal(t, "23:00:00", rows[3].Time) // Sydney, UTC+11 (AEDT)
	require.Equal(t, "UTC+11", rows[3].Offset)

	require.Equal(t, Morning, rows[0].Period)
	require.Equal(t, Night, rows[2].Period)
}

// TestTimesIdempotent: the same instant formats identically on repeat.
func TestTimesIdempotent(t *testing.T) {
	t.Parallel()

	p, err := NewPanel([]City{{Name: "Tokyo", Zone: "Asia/Tokyo"}})
	require.NoError(t, err)

	instant := time.Date(2025, time.June, 1, 3, 4, 5, 0, time.UTC)
	first := p.Times(instant)
	second := p.Times(instant)
	require.Equal(t, first, second)
	require.Equal(t, "12:04:05", first[0].Time)
}

func TestFormatHelpers(t *testing.T) {
	t.Parallel()

	instant := time.Date(2025, time.February, 3, 7, 5, 9, 0, time.UTC)
	require.Equal(t, "07:05:09", FormatTime(instant))
	require.Equal(t, "07:05", FormatMinute(instant))
	require.Equal(t, "Monday, February 3, 2025", FormatDate(instant))
}
