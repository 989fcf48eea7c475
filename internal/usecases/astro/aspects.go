package astro

import (
	"math"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// maxOrb is the widest deviation from an exact aspect angle that still
// counts, boundary inclusive
const maxOrb = 6.0

// ComputeAspects finds every aspect between pairs of chart points, the
// ascendant included. Each unordered pair is checked once, in chart order,
// and matches the first aspect angle within orb.
func ComputeAspects(positions map[domain.Body]domain.Position) []domain.Aspect {
	aspects := make([]domain.Aspect, 0)

	points := make([]domain.Body, 0, len(domain.TrackedBodies)+1)
	points = append(points, domain.TrackedBodies...)
	points = append(points, domain.BodyAscendant)

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			bodyA := points[i]
			bodyB := points[j]

			posA, okA := positions[bodyA]
			posB, okB := positions[bodyB]
			if !okA || !okB {
				continue
			}

			angle := angleDistance(posA.Longitude, posB.Longitude)

			for _, target := range domain.AspectTargets {
				orb := math.Abs(angle - target.Angle)
				if orb <= maxOrb {
					aspects = append(aspects, domain.Aspect{
						BodyA: bodyA,
						BodyB: bodyB,
						Type:  target.Type,
						Angle: angle,
						Orb:   orb,
					})
					break
				}
			}
		}
	}

	return aspects
}

// angleDistance returns the shortest angular separation of two longitudes,
// always in [0, 180]
func angleDistance(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 360)
	return math.Min(diff, 360-diff)
}
