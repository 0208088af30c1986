package route

import (
	"math"

	"github.com/micutio/navkit/internal/maneuver"
)

// Inspired by https://github.com/LucaTheHacker/go-haversine

const (
	earthRadiusMeters float64 = 6371000 // mean radius of Earth
	piHalf            float64 = math.Pi / 180
)

func degreesToRadians(d float64) float64 {
	return d * piHalf
}

func radiansToDegrees(r float64) float64 {
	return r / piHalf
}

// distance returns the great circle distance between two coordinates in meters.
//
//nolint:mnd // readability of mathematic formula
func distance(p, q maneuver.Coordinate) float64 {
	fromLat := degreesToRadians(p.Lat)
	toLat := degreesToRadians(q.Lat)

	deltaLat := toLat - fromLat
	deltaLon := degreesToRadians(q.Lon - p.Lon)

	a := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(fromLat)*
			math.Cos(toLat)*
			math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return c * earthRadiusMeters
}

// bearing calculates the initial bearing (forward azimuth) from p to q in degrees [0, 360).
func bearing(p, q maneuver.Coordinate) float64 {
	fLat := degreesToRadians(p.Lat)
	tLat := degreesToRadians(q.Lat)
	dLon := degreesToRadians(q.Lon - p.Lon)

	y := math.Sin(dLon) * math.Cos(tLat)
	x := math.Cos(fLat)*math.Sin(tLat) - math.Sin(fLat)*math.Cos(tLat)*math.Cos(dLon)

	// The result from Atan2 ranges from -180 to +180
	return math.Mod(radiansToDegrees(math.Atan2(y, x))+360.0, 360.0) //nolint:mnd // full circle
}
