package tripmetrics

import "errors"

var (
	// ErrInsufficientData is returned when a trip has no samples
	ErrInsufficientData = errors.New("trip has no points")

	// ErrMalformedTrip is returned when sample sequence numbers are not unique
	ErrMalformedTrip = errors.New("trip points have duplicate sequence numbers")
)
