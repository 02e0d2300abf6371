package v1

import (
	"fmt"
)

// SOSEvent is a row of the SOS fact table.
type SOSEvent struct {
	ID             int64    `json:"sos_id"`
	DriverID       int64    `json:"driver_id"`
	VehicleID      int64    `json:"vehicle_id"`
	TimeID         int64    `json:"time_id"`
	LocationID     int64    `json:"location_id"`
	Severity       *string  `json:"severity,omitempty"`
	SignatureValid *bool    `json:"signature_valid,omitempty"`
	AnomalyScore   *float64 `json:"anomaly_score,omitempty"`
	Resolved       bool     `json:"resolved"`
}

// Location is a row of the location dimension. SOS events create one per event.
type Location struct {
	ID        int64   `json:"location_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      *string `json:"city,omitempty"`
	RoadType  *string `json:"road_type,omitempty"`
}

type CreateSOSRequest struct {
	DriverID       int64      `json:"driver_id" binding:"required"`
	VehicleID      int64      `json:"vehicle_id" binding:"required"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	City           *string    `json:"city"`
	RoadType       *string    `json:"road_type"`
	Severity       *string    `json:"severity"`
	AnomalyScore   *float64   `json:"anomaly_score"`
	SignatureValid *bool      `json:"signature_valid"`
	Timestamp      *Timestamp `json:"timestamp"`
}

func (r *CreateSOSRequest) Validate() error {
	if r.Latitude < -90 || r.Latitude > 90 {
		return fmt.Errorf("latitude must be within [-90, 90]")
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return fmt.Errorf("longitude must be within [-180, 180]")
	}
	if err := maxLen("severity", r.Severity, 10); err != nil {
		return err
	}
	if err := maxLen("city", r.City, 50); err != nil {
		return err
	}
	return maxLen("road_type", r.RoadType, 30)
}
