package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2025, time.March, 14, hour, 30, 0, 0, time.Local)
}

// TestPeriodBoundaries pins the four bucket boundaries.
func TestPeriodBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour int
		want Period
	}{
		{0, Night},
		{5, Night},
		{6, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Evening},
		{20, Evening},
		{21, Night},
		{23, Night},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, PeriodOf(at(tc.hour)), "hour %d", tc.hour)
	}
}

// TestPeriodCoversEveryHour makes sure each hour maps to exactly one of
// the four named periods.
func TestPeriodCoversEveryHour(t *testing.T) {
	t.Parallel()

	for h := 0; h < 24; h++ {
		p := PeriodOf(at(h))
		require.Contains(t,
			[]Period{Morning, Afternoon, Evening, Night}, p,
			"hour %d", h)
		require.NotEmpty(t, p.String(), "hour %d", h)
		require.NotEmpty(t, p.Glyph(), "hour %d", h)
	}
}

func TestPeriodNames(t *testing.T) {
	t.Parallel()

	require.Equal(t, "morning", Morning.String())
	require.Equal(t, "afternoon", Afternoon.String())
	require.Equal(t, "evening", Evening.String())
	require.Equal(t, "night", Night.String())
}
