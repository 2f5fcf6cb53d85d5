// Package geo holds the great-circle helpers used to filter opponents by distance.
package geo

import "github.com/golang/geo/s2"

// EarthRadiusKm is the mean earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

func (p Point) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lon)
}

// DistanceKm returns the haversine great-circle distance between a and b.
// The result is always finite and lies in [0, pi*EarthRadiusKm].
func DistanceKm(a, b Point) float64 {
	return a.latLng().Distance(b.latLng()).Radians() * EarthRadiusKm
}
