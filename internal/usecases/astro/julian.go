package astro

import "time"

// JulianDay converts a UTC moment to a Julian Day number (Meeus, ch. 7).
// 2000-01-01T12:00:00Z is exactly 2451545.0.
func JulianDay(t time.Time) float64 {
	t = t.UTC()

	year := t.Year()
	month := int(t.Month())
	day := float64(t.Day()) +
		float64(t.Hour())/24 +
		float64(t.Minute())/1440 +
		float64(t.Second())/86400

	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	return float64(int(365.25*float64(year+4716))) +
		float64(int(30.6001*float64(month+1))) +
		day + float64(b) - 1524.5
}
