package service

import (
	"context"
	"sync"

	"github.com/jengzang/trip-metrics-backend-go/internal/models"
)

type fakeTrips struct {
	mu    sync.Mutex
	trips map[string]models.Trip
	err   error
}

func newFakeTrips(trips ...models.Trip) *fakeTrips {
	f := &fakeTrips{trips: map[string]models.Trip{}}
	for _, t := range trips {
		f.trips[t.ID] = t
	}
	return f
}

func (f *fakeTrips) GetTripByID(_ context.Context, id string) (*models.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.trips[id]
	if !ok {
		return nil, nil
	}
	t.Points = append([]models.TripPoint(nil), t.Points...)
	return &t, nil
}

func (f *fakeTrips) GetTrips(_ context.Context, filter models.TripFilter) ([]models.TripSummary, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []models.TripSummary
	for _, t := range f.trips {
		out = append(out, models.TripSummary{ID: t.ID, Name: t.Name, StartTimestamp: t.StartTimestamp, PointCount: len(t.Points)})
	}
	return out, int64(len(out)), nil
}

func (f *fakeTrips) CreateTrip(_ context.Context, trip models.Trip) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.trips[trip.ID] = trip
	return nil
}

func (f *fakeTrips) DeleteTrip(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.trips[id]; !ok {
		return false, nil
	}
	delete(f.trips, id)
	return true, nil
}

type fakeSettings struct {
	mu    sync.Mutex
	pref  models.UnitPreference
	reads int
	err   error
}

func (f *fakeSettings) GetUnitPreference(context.Context) (models.UnitPreference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	return f.pref, f.err
}

func (f *fakeSettings) SaveUnitPreference(_ context.Context, pref models.UnitPreference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pref = pref
	return f.err
}

func (f *fakeSettings) set(pref models.UnitPreference) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pref = pref
}

type recordingReporter struct {
	mu   sync.Mutex
	errs []error
}

func (r *recordingReporter) Report(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recordingReporter) reported() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

type countingProgress struct {
	mu       sync.Mutex
	started  int
	disposed int
	messages []string
}

func (c *countingProgress) Start(message string) Progress {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	c.messages = append(c.messages, message)
	return progressFunc(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.disposed++
	})
}

func (c *countingProgress) counts() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started, c.disposed
}

type progressFunc func()

func (f progressFunc) Dispose() { f() }
