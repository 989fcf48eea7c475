package astro

import (
	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/ports/cache"
	"github.com/AndreaVaz0608/skyai/internal/ports/service"
)

// Service computes birth charts: place resolution, planetary positions,
// sign reduction and aspects
type Service struct {
	Geocoder  service.IGeocoderService
	TimeZone  service.ITimeZoneService
	Ephemeris service.IEphemerisService

	// Cache keeps resolved coordinates per place. Optional, nil-safe.
	Cache cache.Cache

	Log *slog.Logger
}

// New creates the chart calculation service
func New(
	geocoder service.IGeocoderService,
	timeZone service.ITimeZoneService,
	ephemeris service.IEphemerisService,
	log *slog.Logger,
) *Service {
	return &Service{
		Geocoder:  geocoder,
		TimeZone:  timeZone,
		Ephemeris: ephemeris,
		Log:       log,
	}
}
