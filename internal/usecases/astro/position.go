package astro

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// ResolvedPosition is the fully resolved birth moment and place
type ResolvedPosition struct {
	Coordinates domain.Coordinates
	Timezone    string
	UTC         time.Time
	JulianDay   float64
}

// ResolvePosition turns the textual birth input into coordinates, an IANA
// zone, the UTC instant and its Julian Day. The birth clock time is read in
// the zone of the birth place, never the server zone.
func (s *Service) ResolvePosition(ctx context.Context, birth domain.BirthInput) (*ResolvedPosition, error) {
	isoDate, err := domain.ParseBirthDate(birth.BirthDate)
	if err != nil {
		return nil, domain.NewBusinessError(err)
	}
	birthDate, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return nil, domain.NewBusinessError(err)
	}

	birthTime, err := domain.ParseBirthTime(birth.BirthTime)
	if err != nil {
		return nil, domain.NewBusinessError(err)
	}

	coords, err := s.geocode(ctx, birth.BirthCity, birth.BirthCountry)
	if err != nil {
		return nil, err
	}

	zone, err := s.TimeZone.ZoneFor(ctx, coords)
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load zone %q: %w", zone, err)
	}

	local := time.Date(
		birthDate.Year(), birthDate.Month(), birthDate.Day(),
		0, 0, 0, 0,
		location,
	).Add(birthTime)

	utc := local.UTC()
	jd := JulianDay(utc)

	s.Log.Debug("birth position resolved",
		"city", birth.BirthCity,
		"zone", zone,
		"utc", utc.Format(time.RFC3339),
		"julian_day", jd,
	)

	return &ResolvedPosition{
		Coordinates: coords,
		Timezone:    zone,
		UTC:         utc,
		JulianDay:   jd,
	}, nil
}

const geocodeCacheTTL = 7 * 24 * time.Hour

// geocode resolves a place to coordinates, going through the cache when one
// is configured. Cache failures fall through to the live lookup.
func (s *Service) geocode(ctx context.Context, city, country string) (domain.Coordinates, error) {
	if s.Cache == nil {
		return s.Geocoder.Geocode(ctx, city, country)
	}

	key := fmt.Sprintf("geocode:%s:%s", strings.ToLower(city), strings.ToLower(country))

	if cached, err := s.Cache.Get(ctx, key); err == nil && cached != "" {
		var coords domain.Coordinates
		if err := json.Unmarshal([]byte(cached), &coords); err == nil {
			return coords, nil
		}
	}

	coords, err := s.Geocoder.Geocode(ctx, city, country)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if payload, err := json.Marshal(coords); err == nil {
		if err := s.Cache.Set(ctx, key, string(payload), geocodeCacheTTL); err != nil {
			s.Log.Warn("failed to cache geocode result", "error", err, "key", key)
		}
	}

	return coords, nil
}
