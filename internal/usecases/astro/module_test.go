package astro

import (
	"context"
	"fmt"
	"io"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

func ctxBG() context.Context { return context.Background() }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeGeocoder struct {
	coords domain.Coordinates
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _, _ string) (domain.Coordinates, error) {
	f.calls++
	return f.coords, f.err
}

type fakeTimeZone struct {
	zone string
}

func (f *fakeTimeZone) ZoneFor(_ context.Context, _ domain.Coordinates) (string, error) {
	return f.zone, nil
}

type fakeEphemeris struct {
	longitudes map[domain.Body]float64
	ascendant  float64
}

func (f *fakeEphemeris) BodyLongitude(_ context.Context, _ float64, body domain.Body) (float64, error) {
	longitude, ok := f.longitudes[body]
	if !ok {
		return 0, fmt.Errorf("no longitude for %s", body)
	}
	return longitude, nil
}

func (f *fakeEphemeris) AscendantLongitude(_ context.Context, _ float64, _ domain.Coordinates) (float64, error) {
	return f.ascendant, nil
}

func newTestService(eph *fakeEphemeris) *Service {
	return New(
		&fakeGeocoder{coords: domain.Coordinates{Latitude: -23.55, Longitude: -46.63}},
		&fakeTimeZone{zone: "America/Sao_Paulo"},
		eph,
		testLogger(),
	)
}
