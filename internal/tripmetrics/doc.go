// Package tripmetrics derives the per-cursor display metrics of a recorded
// trip: elapsed time, cumulative distance, instantaneous speed and average
// fuel consumption.
//
// Every call is independent. The engine reads no ambient settings and
// performs no I/O; unit preferences are passed in by the caller and the trip
// is never modified.
package tripmetrics
