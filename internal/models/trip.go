package models

import "time"

// Trip represents a recorded drive and its telemetry samples
type Trip struct {
	ID             string      `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	StartTimestamp time.Time   `json:"startTimestamp" db:"start_ms"`
	Points         []TripPoint `json:"points"`
}

// TripSummary is the list view of a trip, without its samples
type TripSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	StartTimestamp time.Time `json:"startTimestamp"`
	PointCount     int       `json:"pointCount"`
}

// TripsResponse represents a paginated response of trips
type TripsResponse struct {
	Data       []TripSummary `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// TripFilter represents filter parameters for listing trips
type TripFilter struct {
	StartTime int64  `form:"startTime"` // Unix timestamp
	EndTime   int64  `form:"endTime"`   // Unix timestamp
	Name      string `form:"name"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}

// CreateTripRequest is the ingest payload for a recorded trip
type CreateTripRequest struct {
	ID             string             `json:"id"`
	Name           string             `json:"name" binding:"required"`
	StartTimestamp time.Time          `json:"startTimestamp" binding:"required"`
	Points         []TripPointPayload `json:"points" binding:"dive"`
}
