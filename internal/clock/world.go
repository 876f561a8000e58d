package clock

import (
	"fmt"
	"time"
)

// City pairs a display name with an IANA timezone identifier.
type City struct {
	Name string
	Zone string
}

// DefaultCities returns the fixed world-clock set. The list is a
// process-lifetime constant; zones are validated once in NewPanel.
func DefaultCities() []City {
	return []City{
		{Name: "New York", Zone: "America/New_York"},
		{Name: "London", Zone: "Europe/London"},
		{Name: "Tokyo", Zone: "Asia/Tokyo"},
		{Name: "Sydney", Zone: "Australia/Sydney"},
	}
}

// CityTime is one rendered row of the world-clock panel.
type CityTime struct {
	Name   string
	Time   string // HH:MM:SS in the city's zone
	Offset string // UTC±H[:MM]
	Period Period // day period in the city's zone
}

type resolvedCity struct {
	city City
	loc  *time.Location
}

// Panel holds the world-clock cities with their zones resolved.
type Panel struct {
	cities []resolvedCity
}

// NewPanel resolves every city's timezone. An unresolvable zone is a
// configuration error and should be fatal at startup; nothing here is
// user-supplied, so there is no per-tick validation path.
func NewPanel(cities []City) (*Panel, error) {
	p := &Panel{cities: make([]resolvedCity, 0, len(cities))}
	for _, c := range cities {
		loc, err := time.LoadLocation(c.Zone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q for %s: %w", c.Zone, c.Name, err)
		}
		p.cities = append(p.cities, resolvedCity{city: c, loc: loc})
	}
	return p, nil
}

// Times renders every city against the given instant. Formatting a
// fixed instant is idempotent; only the instant varies between ticks.
func (p *Panel) Times(now time.Time) []CityTime {
	out := make([]CityTime, 0, len(p.cities))
	for _, rc := range p.cities {
		t := now.In(rc.loc)
		out = append(out, CityTime{
			Name:   rc.city.Name,
			Time:   FormatTime(t),
			Offset: formatOffset(t),
			Period: PeriodOf(t),
		})
	}
	return out
}

func formatOffset(t time.Time) string {
	_, secs := t.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}
