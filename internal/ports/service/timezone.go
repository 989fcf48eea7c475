package service

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// ITimeZoneService maps coordinates to an IANA zone name. Implementations
// fall back to a configured default zone instead of failing.
type ITimeZoneService interface {
	ZoneFor(ctx context.Context, coords domain.Coordinates) (string, error)
}
