package mndf

import "math"

type Location struct {
	Latitude  float64 `groups:"basic"`
	Longitude float64 `groups:"basic"`
}

const earthRadiusKilometres = 6371

// Haversine great-circle distance in kilometres.
func (l *Location) DistanceFrom(other *Location) float64 {
	dLat := degreesToRadians(other.Latitude - l.Latitude)
	dLon := degreesToRadians(other.Longitude - l.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(l.Latitude))*math.Cos(degreesToRadians(other.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKilometres * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
