package maneuver

import "math"

// Compass is one of eight 45° wide headings.
type Compass int

const (
	North Compass = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var compassKeys = [...]string{ //nolint:gochecknoglobals // enum names
	North:     "compass.north",
	NorthEast: "compass.northeast",
	East:      "compass.east",
	SouthEast: "compass.southeast",
	South:     "compass.south",
	SouthWest: "compass.southwest",
	West:      "compass.west",
	NorthWest: "compass.northwest",
}

// catalogKey is the string resource of the heading.
func (c Compass) catalogKey() string {
	return compassKeys[c]
}

// CompassFromOrientation buckets a map orientation into a heading. Each bucket is centred on its
// heading, so north covers [337.5°, 22.5°). Any angle is accepted and normalised first.
func CompassFromOrientation(degrees float64) Compass {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return North
	}

	bearing := math.Mod(math.Mod(degrees, 360)+360, 360) //nolint:mnd // full circle

	start := 22.5
	step := 45.0

	for i := 0; i < len(compassKeys); i++ {
		if bearing < start {
			return Compass(i)
		}

		start += step
	}

	return North
}
