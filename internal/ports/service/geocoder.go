package service

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// IGeocoderService resolves a birth place to coordinates.
type IGeocoderService interface {
	Geocode(ctx context.Context, city, country string) (domain.Coordinates, error)
}
