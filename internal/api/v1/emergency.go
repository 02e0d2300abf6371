package v1

import (
	"fmt"
	"strings"
)

// EmergencyNumber holds the ambulance number for one country.
type EmergencyNumber struct {
	CountryCode     string  `json:"country_code"`
	CountryName     string  `json:"country_name"`
	AmbulanceNumber string  `json:"ambulance_number"`
	Notes           *string `json:"notes,omitempty"`
}

// EmergencyProfile is a driver's emergency behaviour preferences.
type EmergencyProfile struct {
	ID                   int64   `json:"emergency_id"`
	DriverID             int64   `json:"driver_id"`
	AutoContactEnabled   *bool   `json:"auto_contact_enabled,omitempty"`
	EmergencyCountryCode *string `json:"emergency_country_code,omitempty"`
	ShareLocation        *bool   `json:"share_location,omitempty"`
	ShareMedicalInfo     *bool   `json:"share_medical_info,omitempty"`
}

// EmergencyProfileInput replaces a driver's emergency profile.
type EmergencyProfileInput struct {
	AutoContactEnabled   *bool   `json:"auto_contact_enabled" binding:"required"`
	EmergencyCountryCode *string `json:"emergency_country_code"`
	ShareLocation        *bool   `json:"share_location"`
	ShareMedicalInfo     *bool   `json:"share_medical_info"`
}

// Normalize upper-cases the country code.
func (in *EmergencyProfileInput) Normalize() error {
	if in.EmergencyCountryCode == nil {
		return nil
	}
	code := strings.ToUpper(strings.TrimSpace(*in.EmergencyCountryCode))
	if code == "" || len(code) > 5 {
		return fmt.Errorf("emergency_country_code must be 1-5 characters")
	}
	in.EmergencyCountryCode = &code
	return nil
}
