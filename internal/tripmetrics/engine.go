package tripmetrics

import (
	"sort"

	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/spatial"
)

const (
	// litersPerFlowHour converts an average mass flow reading sustained for
	// one hour into liters of fuel.
	litersPerFlowHour = 0.3047247
	gallonsPerLiter   = 0.264172

	// minDistancePoints is the smallest prefix whose path length is reported
	minDistancePoints = 3

	notAvailable = "N/A"
	zeroDistance = "0.0"
)

// Unit labels
const (
	UnitKilometers = "Kilometers"
	UnitMiles      = "Miles"
	UnitKmh        = "Kmh"
	UnitMph        = "Mph"
	UnitLiters     = "Liters"
	UnitGallons    = "Gallons"
)

// Compute derives the metrics of trip at cursor. The cursor is matched by
// timestamp: every sample recorded at or before it counts towards distance
// and fuel.
func Compute(trip models.Trip, cursor models.TripPoint, prefs models.UnitPreference) (models.TripMetrics, error) {
	if len(trip.Points) == 0 {
		return models.TripMetrics{}, ErrInsufficientData
	}

	points, err := SortedPoints(trip.Points)
	if err != nil {
		return models.TripMetrics{}, err
	}

	elapsed := cursor.Timestamp.Sub(trip.StartTimestamp)
	if elapsed < 0 {
		elapsed = 0
	}

	prefix := pointsUntil(points, cursor)

	m := Defaults(prefs)
	m.TripID = trip.ID
	m.Title = trip.Name
	seq := cursor.Sequence
	m.Sequence = &seq
	m.ElapsedTime = FormatElapsed(elapsed)
	m.Speed = formatSpeed(cursor.Speed)

	if len(prefix) >= minDistancePoints {
		miles := Accumulate(prefix)
		if prefs.MetricDistance {
			m.Distance = formatDecimal(miles * spatial.KilometersPerMile)
		} else {
			m.Distance = formatDecimal(miles)
		}
	}

	if avgFlow, ok := averageMassFlow(prefix); ok {
		liters := avgFlow * elapsed.Hours() * litersPerFlowHour
		if prefs.MetricUnits {
			m.FuelConsumption = formatFixed2(liters)
		} else {
			m.FuelConsumption = formatFixed2(liters * gallonsPerLiter)
		}
	}

	return m, nil
}

// Defaults returns the metrics shown before any sample is selected
func Defaults(prefs models.UnitPreference) models.TripMetrics {
	m := models.TripMetrics{
		ElapsedTime:          "0s",
		Distance:             zeroDistance,
		DistanceUnits:        UnitMiles,
		Speed:                "0.0",
		SpeedUnits:           UnitMph,
		FuelConsumption:      notAvailable,
		FuelConsumptionUnits: UnitGallons,
	}
	if prefs.MetricDistance {
		m.DistanceUnits = UnitKilometers
		m.SpeedUnits = UnitKmh
	}
	if prefs.MetricUnits {
		m.FuelConsumptionUnits = UnitLiters
	}
	return m
}

// SortedPoints returns a copy of points ordered by sequence number
func SortedPoints(points []models.TripPoint) ([]models.TripPoint, error) {
	sorted := make([]models.TripPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Sequence < sorted[j].Sequence
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sequence == sorted[i-1].Sequence {
			return nil, ErrMalformedTrip
		}
	}
	return sorted, nil
}

func pointsUntil(points []models.TripPoint, cursor models.TripPoint) []models.TripPoint {
	prefix := make([]models.TripPoint, 0, len(points))
	for _, p := range points {
		if !p.Timestamp.After(cursor.Timestamp) {
			prefix = append(prefix, p)
		}
	}
	return prefix
}

// averageMassFlow averages the available OBD flow readings
func averageMassFlow(points []models.TripPoint) (float64, bool) {
	var sum float64
	var n int
	for _, p := range points {
		if !p.HasOBDData || p.MassFlowRate == nil {
			continue
		}
		sum += *p.MassFlowRate
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
