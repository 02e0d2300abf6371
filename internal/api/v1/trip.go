package v1

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trip is a row of the trip fact table.
type Trip struct {
	ID              int64    `json:"trip_id"`
	DriverID        int64    `json:"driver_id"`
	VehicleID       int64    `json:"vehicle_id"`
	TimeID          int64    `json:"time_id"`
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	AvgSpeed        *float64 `json:"avg_speed,omitempty"`
	HarshEvents     *int     `json:"harsh_events,omitempty"`
	EcoScore        *float64 `json:"eco_score,omitempty"`
	SafetyScore     *float64 `json:"safety_score,omitempty"`
	TripDurationSec *int     `json:"trip_duration_sec,omitempty"`
	MaxSpeed        *float64 `json:"max_speed,omitempty"`
}

// CreateTripRequest records a completed trip. Timestamp selects the time bucket
// and defaults to the time the request is handled.
type CreateTripRequest struct {
	DriverID        int64      `json:"driver_id" binding:"required"`
	VehicleID       int64      `json:"vehicle_id" binding:"required"`
	DistanceKm      float64    `json:"distance_km"`
	AvgSpeed        float64    `json:"avg_speed"`
	HarshEvents     int        `json:"harsh_events"`
	EcoScore        float64    `json:"eco_score"`
	SafetyScore     float64    `json:"safety_score"`
	TripDurationSec int        `json:"trip_duration_sec"`
	MaxSpeed        float64    `json:"max_speed"`
	Timestamp       *Timestamp `json:"timestamp"`
}

func (r *CreateTripRequest) Validate() error {
	if r.DistanceKm < 0 {
		return fmt.Errorf("distance_km must be >= 0")
	}
	if r.AvgSpeed < 0 || r.MaxSpeed < 0 {
		return fmt.Errorf("speeds must be >= 0")
	}
	if r.HarshEvents < 0 {
		return fmt.Errorf("harsh_events must be >= 0")
	}
	if r.TripDurationSec < 0 {
		return fmt.Errorf("trip_duration_sec must be >= 0")
	}
	return nil
}

// TripSummary aggregates a single driver's trips.
type TripSummary struct {
	TotalTrips     int64           `json:"total_trips"`
	AvgSafetyScore decimal.Decimal `json:"avg_safety_score"`
	AvgEcoScore    decimal.Decimal `json:"avg_eco_score"`
}
