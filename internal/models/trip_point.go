package models

import "time"

// TripPoint is one telemetry sample of a trip. Samples are immutable once
// ingested.
type TripPoint struct {
	Sequence   int64     `json:"sequence" db:"sequence"`
	Timestamp  time.Time `json:"timestamp" db:"recorded_ms"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Speed      float64   `json:"speed" db:"speed"` // km/h as reported by the sensor
	HasOBDData bool      `json:"hasObdData" db:"has_obd_data"`

	// MassFlowRate is nil when the OBD reading was unavailable.
	MassFlowRate *float64 `json:"massFlowRate,omitempty" db:"mass_flow_rate"`
}

// TripPointPayload is a sample as sent by recording clients, where a mass
// flow rate of -1 means "no reading".
type TripPointPayload struct {
	Sequence     int64     `json:"sequence"`
	Timestamp    time.Time `json:"timestamp" binding:"required"`
	Latitude     float64   `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64   `json:"longitude" binding:"min=-180,max=180"`
	Speed        float64   `json:"speed"`
	HasOBDData   bool      `json:"hasObdData"`
	MassFlowRate *float64  `json:"massFlowRate"`
}

// NoReading is the client sentinel for an unavailable mass flow rate
const NoReading = -1.0

// MassFlowReading converts a raw sensor value into an optional reading
func MassFlowReading(raw float64) *float64 {
	if raw <= NoReading {
		return nil
	}
	v := raw
	return &v
}

// ToTripPoint normalises an ingested sample
func (p TripPointPayload) ToTripPoint() TripPoint {
	point := TripPoint{
		Sequence:   p.Sequence,
		Timestamp:  p.Timestamp,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Speed:      p.Speed,
		HasOBDData: p.HasOBDData,
	}
	if p.MassFlowRate != nil {
		point.MassFlowRate = MassFlowReading(*p.MassFlowRate)
	}
	return point
}
