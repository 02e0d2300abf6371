package v1

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates (date of birth, bucket dates).
const DateLayout = "2006-01-02"

// Driver is a row of the driver dimension.
type Driver struct {
	ID          int64      `json:"driver_id"`
	Name        string     `json:"name"`
	LicenseType *string    `json:"license_type,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
}

// DriverInput is the create/patch payload for a driver.
// On patch, nil fields keep their stored value.
type DriverInput struct {
	Name        *string `json:"name"`
	LicenseType *string `json:"license_type"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
}

// ValidateCreate ensures the payload can create a new driver.
func (in *DriverInput) ValidateCreate() error {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return in.Validate()
}

// Validate checks field formats and lengths without requiring any field.
func (in *DriverInput) Validate() error {
	if in.Name != nil && (strings.TrimSpace(*in.Name) == "" || len(*in.Name) > 100) {
		return fmt.Errorf("name must be 1-100 characters")
	}
	if err := maxLen("license_type", in.LicenseType, 20); err != nil {
		return err
	}
	if err := maxLen("email", in.Email, 100); err != nil {
		return err
	}
	if err := maxLen("phone", in.Phone, 20); err != nil {
		return err
	}
	if _, err := in.ParsedDateOfBirth(); err != nil {
		return err
	}
	return nil
}

// ParsedDateOfBirth returns the date of birth as a UTC midnight timestamp, or nil when unset.
func (in *DriverInput) ParsedDateOfBirth() (*time.Time, error) {
	if in.DateOfBirth == nil {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *in.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("date_of_birth must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}

func maxLen(field string, v *string, n int) error {
	if v != nil && len(*v) > n {
		return fmt.Errorf("%s must be at most %d characters", field, n)
	}
	return nil
}
