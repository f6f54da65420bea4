package models

// UnitPreference selects metric or imperial rendering. Distance (and the
// speed label) and fuel volume are switched independently.
type UnitPreference struct {
	MetricDistance bool `json:"metricDistance"`
	MetricUnits    bool `json:"metricUnits"`
}

// TripMetrics is the display state for a trip at a cursor sample
type TripMetrics struct {
	TripID   string `json:"tripId"`
	Title    string `json:"title"`
	Sequence *int64 `json:"sequence,omitempty"`

	ElapsedTime          string `json:"elapsedTime"`
	Distance             string `json:"distance"`
	DistanceUnits        string `json:"distanceUnits"`
	Speed                string `json:"speed"`
	SpeedUnits           string `json:"speedUnits"`
	FuelConsumption      string `json:"fuelConsumption"`
	FuelConsumptionUnits string `json:"fuelConsumptionUnits"`
}
