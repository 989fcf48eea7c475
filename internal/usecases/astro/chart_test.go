package astro

import (
	"testing"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReduceToSign(t *testing.T) {
	tests := []struct {
		name      string
		longitude float64
		sign      string
		degree    float64
	}{
		{"zero is Aries", 0, "Aries", 0},
		{"end of Aries", 29.999, "Aries", 29.999},
		{"sign boundary", 30, "Taurus", 0},
		{"mid Leo", 135.5, "Leo", 15.5},
		{"end of zodiac", 359.9, "Pisces", 29.9},
		{"wraps above 360", 370, "Aries", 10},
		{"negative wraps", -10, "Pisces", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := reduceToSign(tt.longitude)
			assert.Equal(t, tt.sign, pos.Sign)
			assert.InDelta(t, tt.degree, pos.Degree, 1e-9)
		})
	}
}

func TestBuildChartCoversAllBodies(t *testing.T) {
	svc := newTestService(&fakeEphemeris{
		longitudes: map[domain.Body]float64{
			domain.BodySun:     10,
			domain.BodyMoon:    100,
			domain.BodyMercury: 20,
			domain.BodyVenus:   45,
			domain.BodyMars:    190,
			domain.BodyJupiter: 250,
			domain.BodySaturn:  300,
			domain.BodyUranus:  330,
			domain.BodyNeptune: 355,
			domain.BodyPluto:   220,
		},
		ascendant: 95,
	})

	chart, err := svc.BuildChart(ctxBG(), &ResolvedPosition{
		Coordinates: domain.Coordinates{Latitude: -23.55, Longitude: -46.63},
		Timezone:    "America/Sao_Paulo",
		JulianDay:   2451545.0,
	})

	assert.NoError(t, err)
	assert.Len(t, chart.Positions, 11)
	assert.Equal(t, "Aries", chart.SignOf(domain.BodySun))
	assert.Equal(t, "Cancer", chart.SignOf(domain.BodyMoon))
	assert.Equal(t, "Cancer", chart.SignOf(domain.BodyAscendant))
	assert.Equal(t, "America/Sao_Paulo", chart.Timezone)
	assert.Equal(t, 2451545.0, chart.JulianDay)
}
