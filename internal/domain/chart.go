package domain

// Body identifies a tracked chart point.
type Body string

const (
	BodySun     Body = "SUN"
	BodyMoon    Body = "MOON"
	BodyMercury Body = "MERCURY"
	BodyVenus   Body = "VENUS"
	BodyMars    Body = "MARS"
	BodyJupiter Body = "JUPITER"
	BodySaturn  Body = "SATURN"
	BodyUranus  Body = "URANUS"
	BodyNeptune Body = "NEPTUNE"
	BodyPluto   Body = "PLUTO"

	// BodyAscendant is not a planet but shares the position shape and
	// participates in aspect detection.
	BodyAscendant Body = "ASC"
)

// TrackedBodies lists the ten planets in chart order (ascendant excluded).
var TrackedBodies = []Body{
	BodySun, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
}

// Signs in zodiac order; index = floor(longitude/30) mod 12.
var Signs = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Position is an ecliptic placement reduced to sign and in-sign degree.
type Position struct {
	Longitude float64 `json:"longitude"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
}

// AspectType names one of the six canonical aspect angles.
type AspectType string

const (
	AspectConjunction AspectType = "Conjunction"
	AspectSextile     AspectType = "Sextile"
	AspectSquare      AspectType = "Square"
	AspectTrine       AspectType = "Trine"
	AspectQuincunx    AspectType = "Quincunx"
	AspectOpposition  AspectType = "Opposition"
)

// AspectTargets maps each canonical angle to its aspect name, in angle order.
var AspectTargets = []struct {
	Angle float64
	Type  AspectType
}{
	{0, AspectConjunction},
	{60, AspectSextile},
	{90, AspectSquare},
	{120, AspectTrine},
	{150, AspectQuincunx},
	{180, AspectOpposition},
}

// Aspect records a pair of points whose angular separation falls within orb
// of a canonical angle.
type Aspect struct {
	BodyA Body       `json:"body1"`
	BodyB Body       `json:"body2"`
	Type  AspectType `json:"aspect"`
	Angle float64    `json:"angle"`
	Orb   float64    `json:"orb"`
}

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BirthChart is the computed chart: ten bodies plus ASC, and all detected
// aspects. Derived data; never mutated after computation.
type BirthChart struct {
	Positions map[Body]Position `json:"positions"`
	Aspects   []Aspect          `json:"aspects"`
	Timezone  string            `json:"timezone"`
	JulianDay float64           `json:"jd_ut"`
}

// SignOf returns the sign of the given point, or "" when absent.
func (c *BirthChart) SignOf(body Body) string {
	if pos, ok := c.Positions[body]; ok {
		return pos.Sign
	}
	return ""
}
