package clock

import "time"

// Period is the day-period bucket the local hour falls into. It drives
// the banner glyph and the accent color of the whole UI.
type Period int

const (
	Morning Period = iota // [06:00, 12:00)
	Afternoon             // [12:00, 18:00)
	Evening               // [18:00, 21:00)
	Night                 // [21:00, 06:00)
)

var periodNames = map[Period]string{
	Morning:   "morning",
	Afternoon: "afternoon",
	Evening:   "evening",
	Night:     "night",
}

var periodGlyphs = map[Period]string{
	Morning:   "🌅",
	Afternoon: "☀",
	Evening:   "🌇",
	Night:     "🌙",
}

// PeriodOf derives the day period from the instant's local hour.
// Exactly one period holds for every hour 0–23; boundaries switch
// immediately, with no hysteresis.
func PeriodOf(t time.Time) Period {
	switch h := t.Hour(); {
	case h >= 6 && h < 12:
		return Morning
	case h >= 12 && h < 18:
		return Afternoon
	case h >= 18 && h < 21:
		return Evening
	default:
		return Night
	}
}

func (p Period) String() string {
	return periodNames[p]
}

// Glyph returns the display icon for the period.
func (p Period) Glyph() string {
	return periodGlyphs[p]
}
