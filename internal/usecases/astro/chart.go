package astro

import (
	"context"
	"math"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// BuildChart computes the positions of the ten tracked bodies plus the
// ascendant and derives the aspects between all chart points
func (s *Service) BuildChart(ctx context.Context, pos *ResolvedPosition) (*domain.BirthChart, error) {
	positions := make(map[domain.Body]domain.Position, len(domain.TrackedBodies)+1)

	for _, body := range domain.TrackedBodies {
		longitude, err := s.Ephemeris.BodyLongitude(ctx, pos.JulianDay, body)
		if err != nil {
			return nil, err
		}
		positions[body] = reduceToSign(longitude)
	}

	ascLongitude, err := s.Ephemeris.AscendantLongitude(ctx, pos.JulianDay, pos.Coordinates)
	if err != nil {
		return nil, err
	}
	positions[domain.BodyAscendant] = reduceToSign(ascLongitude)

	chart := &domain.BirthChart{
		Positions: positions,
		Aspects:   ComputeAspects(positions),
		Timezone:  pos.Timezone,
		JulianDay: pos.JulianDay,
	}

	s.Log.Debug("birth chart built",
		"julian_day", pos.JulianDay,
		"aspects", len(chart.Aspects),
	)

	return chart, nil
}

// reduceToSign maps an ecliptic longitude to its zodiac sign and the degree
// within that sign
func reduceToSign(longitude float64) domain.Position {
	longitude = math.Mod(longitude, 360)
	if longitude < 0 {
		longitude += 360
	}

	return domain.Position{
		Longitude: longitude,
		Sign:      domain.Signs[int(longitude/30)%12],
		Degree:    math.Mod(longitude, 30),
	}
}
