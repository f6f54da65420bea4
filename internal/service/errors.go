package service

import "errors"

var (
	// ErrTripNotFound is returned when the store has no trip with the requested ID
	ErrTripNotFound = errors.New("trip not found")

	// ErrPointNotFound is returned when a cursor sequence is not part of the trip
	ErrPointNotFound = errors.New("trip point not found")

	// ErrNoTrip is returned when a detail view is asked for metrics before a trip was loaded
	ErrNoTrip = errors.New("no trip loaded")

	// ErrLoadFailure wraps store errors raised while loading a trip
	ErrLoadFailure = errors.New("failed to load trip")
)
