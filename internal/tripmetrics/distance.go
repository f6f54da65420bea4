package tripmetrics

import (
	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/spatial"
)

// Accumulate sums the great-circle length in miles of consecutive segments,
// walking points in the order given. Fewer than two points yield zero.
func Accumulate(points []models.TripPoint) float64 {
	if len(points) < 2 {
		return 0
	}

	total := 0.0
	prev := points[0]
	for _, p := range points[1:] {
		total += spatial.DistanceMiles(prev.Latitude, prev.Longitude, p.Latitude, p.Longitude)
		prev = p
	}
	return total
}
