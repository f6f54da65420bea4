package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jengzang/trip-metrics-backend-go/internal/metrics"
	"github.com/jengzang/trip-metrics-backend-go/internal/models"
	"github.com/jengzang/trip-metrics-backend-go/internal/tripmetrics"
)

// LoadState is the busy token of a trip detail view
type LoadState int32

const (
	Idle LoadState = iota
	Loading
)

func (s LoadState) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

const loadingMessage = "Loading trip details..."

// TripDetail holds one trip being scrubbed through and the metrics at the
// selected point. At most one load runs at a time.
type TripDetail struct {
	store     TripStore
	settings  SettingsStore
	reporter  ErrorReporter
	progress  ProgressReporter
	collector *metrics.Collector

	state atomic.Int32

	mu      sync.RWMutex
	trip    *models.Trip
	current models.TripMetrics
}

// NewTripDetail creates an idle detail view with no trip
func NewTripDetail(store TripStore, settings SettingsStore, reporter ErrorReporter, progress ProgressReporter, collector *metrics.Collector) *TripDetail {
	return &TripDetail{
		store:     store,
		settings:  settings,
		reporter:  reporter,
		progress:  progress,
		collector: collector,
	}
}

// State reports whether a load is in flight
func (d *TripDetail) State() LoadState {
	return LoadState(d.state.Load())
}

// Load fetches trip id and makes it current. A call made while another load
// is in flight returns false without doing anything. Store failures,
// panics included, are reported and swallowed, leaving the previous trip in
// place; Load then returns false.
func (d *TripDetail) Load(ctx context.Context, id string) bool {
	if !d.state.CompareAndSwap(int32(Idle), int32(Loading)) {
		if d.collector != nil {
			d.collector.TripLoadsRejected.Inc()
		}
		return false
	}
	defer d.state.Store(int32(Idle))

	p := d.progress.Start(loadingMessage)
	defer p.Dispose()

	started := time.Now()
	trip, err := d.fetch(ctx, id)
	if d.collector != nil {
		d.collector.LoadDuration.Observe(time.Since(started).Seconds())
	}
	if err != nil {
		if d.collector != nil {
			d.collector.TripLoadFailures.Inc()
		}
		d.reporter.Report(err)
		return false
	}

	prefs, err := d.settings.GetUnitPreference(ctx)
	if err != nil {
		d.reporter.Report(fmt.Errorf("failed to read unit preference: %w", err))
	}
	m := tripmetrics.Defaults(prefs)
	m.TripID = trip.ID
	m.Title = trip.Name

	d.mu.Lock()
	d.trip = trip
	d.current = m
	d.mu.Unlock()

	if d.collector != nil {
		d.collector.TripsLoaded.Inc()
	}
	return true
}

func (d *TripDetail) fetch(ctx context.Context, id string) (loaded *models.Trip, err error) {
	defer func() {
		if r := recover(); r != nil {
			loaded = nil
			err = fmt.Errorf("%w %s: store panicked: %v", ErrLoadFailure, id, r)
		}
	}()

	trip, err := d.store.GetTripByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadFailure, id, err)
	}
	if trip == nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadFailure, id, ErrTripNotFound)
	}

	points, err := tripmetrics.SortedPoints(trip.Points)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadFailure, id, err)
	}

	t := *trip
	t.Points = points
	return &t, nil
}

// SelectPoint moves the cursor to the point with the given sequence number
// and recomputes the metrics with the current unit preference
func (d *TripDetail) SelectPoint(ctx context.Context, sequence int64) (models.TripMetrics, error) {
	d.mu.RLock()
	trip := d.trip
	d.mu.RUnlock()

	if trip == nil {
		return models.TripMetrics{}, ErrNoTrip
	}

	cursor, ok := findPoint(trip.Points, sequence)
	if !ok && len(trip.Points) > 0 {
		return models.TripMetrics{}, fmt.Errorf("%w: sequence %d", ErrPointNotFound, sequence)
	}

	prefs, err := d.settings.GetUnitPreference(ctx)
	if err != nil {
		return models.TripMetrics{}, fmt.Errorf("failed to read unit preference: %w", err)
	}

	m, err := computeObserved(d.collector, *trip, cursor, prefs)
	if err != nil {
		return models.TripMetrics{}, err
	}

	d.mu.Lock()
	if d.trip == trip {
		d.current = m
	}
	d.mu.Unlock()

	return m, nil
}

// Current returns the loaded trip, or nil, and the last computed metrics
func (d *TripDetail) Current() (*models.Trip, models.TripMetrics) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.trip, d.current
}
