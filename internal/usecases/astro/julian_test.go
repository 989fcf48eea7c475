package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name     string
		moment   time.Time
		expected float64
	}{
		{
			name:     "J2000 epoch",
			moment:   time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			expected: 2451545.0,
		},
		{
			name:     "1987 January 27 midnight",
			moment:   time.Date(1987, 1, 27, 0, 0, 0, 0, time.UTC),
			expected: 2446822.5,
		},
		{
			name:     "1987 June 19 noon",
			moment:   time.Date(1987, 6, 19, 12, 0, 0, 0, time.UTC),
			expected: 2446966.0,
		},
		{
			name:     "Sputnik launch",
			moment:   time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC),
			expected: 2436116.31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, JulianDay(tt.moment), 1e-6)
		})
	}
}

func TestJulianDayConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC-3", -3*3600)
	local := time.Date(2000, 1, 1, 9, 0, 0, 0, zone)

	assert.InDelta(t, 2451545.0, JulianDay(local), 1e-6)
}
