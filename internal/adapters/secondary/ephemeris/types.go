package ephemeris

// positionsRequest asks for ecliptic longitudes of a set of bodies
type positionsRequest struct {
	JulianDay float64  `json:"julian_day"`
	Bodies    []string `json:"bodies"`
}

// positionsResponse maps body name to ecliptic longitude in degrees
type positionsResponse struct {
	Positions map[string]float64 `json:"positions"`
}

// ascendantRequest asks for the rising point at a place
type ascendantRequest struct {
	JulianDay float64 `json:"julian_day"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ascendantResponse carries the ascendant longitude in degrees
type ascendantResponse struct {
	Ascendant float64 `json:"ascendant"`
}
