package service

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// IEphemerisService computes ecliptic longitudes for a moment and place.
type IEphemerisService interface {
	// BodyLongitude returns the ecliptic longitude of body in [0, 360).
	BodyLongitude(ctx context.Context, jd float64, body domain.Body) (float64, error)

	// AscendantLongitude returns the rising-point longitude for the place.
	AscendantLongitude(ctx context.Context, jd float64, coords domain.Coordinates) (float64, error)
}
