package service

import (
	"context"

	"github.com/jengzang/trip-metrics-backend-go/internal/models"
)

// TripStore retrieves trips by identifier. Implementations return nil
// without error when the trip does not exist.
type TripStore interface {
	GetTripByID(ctx context.Context, id string) (*models.Trip, error)
}

// TripRepository is the full trip store used by the API
type TripRepository interface {
	TripStore
	GetTrips(ctx context.Context, filter models.TripFilter) ([]models.TripSummary, int64, error)
	CreateTrip(ctx context.Context, trip models.Trip) error
	DeleteTrip(ctx context.Context, id string) (bool, error)
}

// SettingsStore exposes the current unit preference. It is read on every
// computation, never cached.
type SettingsStore interface {
	GetUnitPreference(ctx context.Context) (models.UnitPreference, error)
}

// SettingsRepository is a settings store that can also be written
type SettingsRepository interface {
	SettingsStore
	SaveUnitPreference(ctx context.Context, pref models.UnitPreference) error
}

func findPoint(points []models.TripPoint, sequence int64) (models.TripPoint, bool) {
	for _, p := range points {
		if p.Sequence == sequence {
			return p, true
		}
	}
	return models.TripPoint{}, false
}
