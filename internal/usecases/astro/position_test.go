package astro

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	entries map[string]string
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.entries[key]
	return ok, nil
}

func (f *fakeCache) Close() error { return nil }

func TestResolvePositionReadsClockInBirthZone(t *testing.T) {
	svc := newTestService(&fakeEphemeris{})

	pos, err := svc.ResolvePosition(ctxBG(), domain.BirthInput{
		FullName:     "Maria Silva",
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
	})
	require.NoError(t, err)

	// Sao Paulo is UTC-3 in May
	expected := time.Date(1990, 5, 10, 17, 30, 0, 0, time.UTC)
	assert.True(t, pos.UTC.Equal(expected), "got %s", pos.UTC)
	assert.Equal(t, "America/Sao_Paulo", pos.Timezone)
	assert.InDelta(t, JulianDay(expected), pos.JulianDay, 1e-9)
}

func TestResolvePositionAcceptsBrazilianDateFormat(t *testing.T) {
	svc := newTestService(&fakeEphemeris{})

	iso, err := svc.ResolvePosition(ctxBG(), domain.BirthInput{
		BirthDate: "1990-05-10",
		BirthTime: "14:30",
	})
	require.NoError(t, err)

	br, err := svc.ResolvePosition(ctxBG(), domain.BirthInput{
		BirthDate: "10/05/1990",
		BirthTime: "14:30",
	})
	require.NoError(t, err)

	assert.True(t, iso.UTC.Equal(br.UTC))
}

func TestResolvePositionRejectsBadInput(t *testing.T) {
	svc := newTestService(&fakeEphemeris{})

	_, err := svc.ResolvePosition(ctxBG(), domain.BirthInput{
		BirthDate: "May 10th 1990",
		BirthTime: "14:30",
	})
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))

	_, err = svc.ResolvePosition(ctxBG(), domain.BirthInput{
		BirthDate: "1990-05-10",
		BirthTime: "half past two",
	})
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
}

func TestResolvePositionCachesGeocodeResult(t *testing.T) {
	geocoder := &fakeGeocoder{coords: domain.Coordinates{Latitude: -23.55, Longitude: -46.63}}
	svc := New(geocoder, &fakeTimeZone{zone: "America/Sao_Paulo"}, &fakeEphemeris{}, testLogger())
	svc.Cache = &fakeCache{entries: make(map[string]string)}

	birth := domain.BirthInput{
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
	}

	first, err := svc.ResolvePosition(ctxBG(), birth)
	require.NoError(t, err)

	second, err := svc.ResolvePosition(ctxBG(), birth)
	require.NoError(t, err)

	assert.Equal(t, 1, geocoder.calls, "second resolution should hit the cache")
	assert.Equal(t, first.Coordinates, second.Coordinates)
}

func TestResolvePositionPropagatesGeocodingError(t *testing.T) {
	svc := New(
		&fakeGeocoder{err: &domain.GeocodingError{City: "Atlantis", Err: errors.New("no results")}},
		&fakeTimeZone{zone: "UTC"},
		&fakeEphemeris{},
		testLogger(),
	)

	_, err := svc.ResolvePosition(ctxBG(), domain.BirthInput{
		BirthDate: "1990-05-10",
		BirthTime: "14:30",
		BirthCity: "Atlantis",
	})
	require.Error(t, err)

	var geoErr *domain.GeocodingError
	assert.ErrorAs(t, err, &geoErr)
}
