package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/trip-metrics-backend-go/internal/metrics"
	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/tripmetrics"
)

// TripService handles business logic for trips
type TripService struct {
	trips     TripRepository
	settings  SettingsRepository
	collector *metrics.Collector
}

// NewTripService creates a new trip service. collector may be nil.
func NewTripService(trips TripRepository, settings SettingsRepository, collector *metrics.Collector) *TripService {
	return &TripService{
		trips:     trips,
		settings:  settings,
		collector: collector,
	}
}

// GetTrips retrieves trip summaries with filtering and pagination
func (s *TripService) GetTrips(ctx context.Context, filter models.TripFilter) (*models.TripsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	trips, total, err := s.trips.GetTrips(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}
	if trips == nil {
		trips = []models.TripSummary{}
	}

	return &models.TripsResponse{
		Data:       trips,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.PageSize))),
	}, nil
}

// GetTripByID retrieves a trip with its points in sequence order
func (s *TripService) GetTripByID(ctx context.Context, id string) (*models.Trip, error) {
	trip, err := s.trips.GetTripByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	points, err := tripmetrics.SortedPoints(trip.Points)
	if err != nil {
		return nil, err
	}
	trip.Points = points
	return trip, nil
}

// CreateTrip ingests a recorded trip. Sentinel flow readings are dropped
// here so stored samples carry either a reading or nothing.
func (s *TripService) CreateTrip(ctx context.Context, req models.CreateTripRequest) (*models.Trip, error) {
	trip := models.Trip{
		ID:             req.ID,
		Name:           req.Name,
		StartTimestamp: req.StartTimestamp.UTC(),
		Points:         make([]models.TripPoint, 0, len(req.Points)),
	}
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	for _, p := range req.Points {
		point := p.ToTripPoint()
		point.Timestamp = point.Timestamp.UTC()
		trip.Points = append(trip.Points, point)
	}

	points, err := tripmetrics.SortedPoints(trip.Points)
	if err != nil {
		return nil, err
	}
	trip.Points = points

	if err := s.trips.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	if s.collector != nil {
		s.collector.TripsIngested.Inc()
	}
	return &trip, nil
}

// DeleteTrip removes a trip and its samples
func (s *TripService) DeleteTrip(ctx context.Context, id string) error {
	deleted, err := s.trips.DeleteTrip(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if !deleted {
		return ErrTripNotFound
	}
	return nil
}

// ComputeMetrics returns the metrics of a trip with the cursor on the point
// with the given sequence number. A nil sequence yields the initial display
// values. The unit preference is read fresh on every call.
func (s *TripService) ComputeMetrics(ctx context.Context, tripID string, sequence *int64) (models.TripMetrics, error) {
	trip, err := s.trips.GetTripByID(ctx, tripID)
	if err != nil {
		return models.TripMetrics{}, fmt.Errorf("failed to get trip: %w", err)
	}
	if trip == nil {
		return models.TripMetrics{}, ErrTripNotFound
	}

	prefs, err := s.settings.GetUnitPreference(ctx)
	if err != nil {
		return models.TripMetrics{}, fmt.Errorf("failed to read unit preference: %w", err)
	}

	if sequence == nil {
		m := tripmetrics.Defaults(prefs)
		m.TripID = trip.ID
		m.Title = trip.Name
		return m, nil
	}

	cursor, ok := findPoint(trip.Points, *sequence)
	if !ok && len(trip.Points) > 0 {
		s.observe("not_found")
		return models.TripMetrics{}, fmt.Errorf("%w: sequence %d", ErrPointNotFound, *sequence)
	}

	return computeObserved(s.collector, *trip, cursor, prefs)
}

// GetUnitPreference returns the current unit preference
func (s *TripService) GetUnitPreference(ctx context.Context) (models.UnitPreference, error) {
	return s.settings.GetUnitPreference(ctx)
}

// UpdateUnitPreference replaces the unit preference
func (s *TripService) UpdateUnitPreference(ctx context.Context, pref models.UnitPreference) error {
	if err := s.settings.SaveUnitPreference(ctx, pref); err != nil {
		return fmt.Errorf("failed to update unit preference: %w", err)
	}
	return nil
}

func (s *TripService) observe(result string) {
	if s.collector != nil {
		s.collector.MetricsComputed.WithLabelValues(result).Inc()
	}
}

// computeObserved runs the engine and records the outcome on collector
func computeObserved(collector *metrics.Collector, trip models.Trip, cursor models.TripPoint, prefs models.UnitPreference) (models.TripMetrics, error) {
	started := time.Now()
	m, err := tripmetrics.Compute(trip, cursor, prefs)
	if collector == nil {
		return m, err
	}

	collector.ComputeDuration.Observe(time.Since(started).Seconds())
	switch {
	case err == nil:
		collector.MetricsComputed.WithLabelValues("ok").Inc()
	case errors.Is(err, tripmetrics.ErrInsufficientData):
		collector.MetricsComputed.WithLabelValues("insufficient_data").Inc()
	case errors.Is(err, tripmetrics.ErrMalformedTrip):
		collector.MetricsComputed.WithLabelValues("malformed").Inc()
	}
	return m, err
}
