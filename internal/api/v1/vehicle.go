package v1

import (
	"fmt"
	"strings"
)

// Vehicle is a row of the vehicle dimension.
type Vehicle struct {
	ID    int64   `json:"vehicle_id"`
	Make  string  `json:"make"`
	Model string  `json:"model"`
	Year  int     `json:"year"`
	Type  *string `json:"type,omitempty"`
}

// VehicleInput is the create/patch payload for a vehicle.
type VehicleInput struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int    `json:"year"`
	Type  *string `json:"type"`
}

func (in *VehicleInput) ValidateCreate() error {
	if in.Make == nil || strings.TrimSpace(*in.Make) == "" {
		return fmt.Errorf("make is required")
	}
	if in.Model == nil || strings.TrimSpace(*in.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if in.Year == nil {
		return fmt.Errorf("year is required")
	}
	return in.Validate()
}

func (in *VehicleInput) Validate() error {
	if err := maxLen("make", in.Make, 50); err != nil {
		return err
	}
	if err := maxLen("model", in.Model, 50); err != nil {
		return err
	}
	if err := maxLen("type", in.Type, 20); err != nil {
		return err
	}
	if in.Year != nil && (*in.Year < 1886 || *in.Year > 2100) {
		return fmt.Errorf("year %d is out of range", *in.Year)
	}
	return nil
}
