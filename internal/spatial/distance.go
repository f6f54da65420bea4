package spatial

import (
	"github.com/golang/geo/s2"
)

// GreatCircleAngle returns the central angle in radians between two points
// given in degrees. s2 evaluates the haversine with atan2, so identical
// coordinates yield exactly zero and antipodal pairs stay finite.
func GreatCircleAngle(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians()
}

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	return GreatCircleAngle(lat1, lon1, lat2, lon2) * EarthRadiusMeters
}

// DistanceMiles calculates the great-circle distance between two points in miles
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return GreatCircleAngle(lat1, lon1, lat2, lon2) * EarthRadiusMiles
}

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
	EarthRadiusMiles  = 3958.8    // Earth's mean radius in statute miles

	KilometersPerMile = 1.60934
)
