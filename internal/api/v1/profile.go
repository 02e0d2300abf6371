package v1

import (
	"fmt"
	"strings"
)

type Contact struct {
	ID           int64   `json:"contact_id"`
	DriverID     int64   `json:"driver_id"`
	Name         string  `json:"name"`
	Relationship *string `json:"relationship,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty"`
	IsPrimary    bool    `json:"is_primary"`
}

type ContactInput struct {
	Name         string  `json:"name" binding:"required"`
	Relationship *string `json:"relationship"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	IsPrimary    bool    `json:"is_primary"`
}

func (in *ContactInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" || len(in.Name) > 100 {
		return fmt.Errorf("name must be 1-100 characters")
	}
	if err := maxLen("relationship", in.Relationship, 50); err != nil {
		return err
	}
	if err := maxLen("phone", in.Phone, 20); err != nil {
		return err
	}
	return maxLen("email", in.Email, 100)
}

type Medical struct {
	ID           int64   `json:"medical_id"`
	DriverID     int64   `json:"driver_id"`
	BloodType    *string `json:"blood_type,omitempty"`
	Insurance    *string `json:"insurance,omitempty"`
	Allergies    *string `json:"allergies,omitempty"`
	Medications  *string `json:"medications,omitempty"`
	Conditions   *string `json:"conditions,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}

// MedicalInput is a partial update: nil fields keep their stored value.
type MedicalInput struct {
	BloodType    *string `json:"blood_type"`
	Insurance    *string `json:"insurance"`
	Allergies    *string `json:"allergies"`
	Medications  *string `json:"medications"`
	Conditions   *string `json:"conditions"`
	Instructions *string `json:"instructions"`
}

func (in *MedicalInput) Validate() error {
	if err := maxLen("blood_type", in.BloodType, 5); err != nil {
		return err
	}
	return maxLen("insurance", in.Insurance, 100)
}

type Settings struct {
	ID                   int64 `json:"settings_id"`
	DriverID             int64 `json:"driver_id"`
	DetectionSensitivity *int  `json:"detection_sensitivity,omitempty"`
	AutoSOSDelay         *int  `json:"auto_sos_delay,omitempty"`
	AccelerometerEnabled *bool `json:"accelerometer_enabled,omitempty"`
	GyroscopeEnabled     *bool `json:"gyroscope_enabled,omitempty"`
	GPSEnabled           *bool `json:"gps_enabled,omitempty"`
	MicrophoneEnabled    *bool `json:"microphone_enabled,omitempty"`
}

type SettingsInput struct {
	DetectionSensitivity *int  `json:"detection_sensitivity"`
	AutoSOSDelay         *int  `json:"auto_sos_delay"`
	AccelerometerEnabled *bool `json:"accelerometer_enabled"`
	GyroscopeEnabled     *bool `json:"gyroscope_enabled"`
	GPSEnabled           *bool `json:"gps_enabled"`
	MicrophoneEnabled    *bool `json:"microphone_enabled"`
}

func (in *SettingsInput) Validate() error {
	if in.AutoSOSDelay != nil && *in.AutoSOSDelay < 0 {
		return fmt.Errorf("auto_sos_delay must be >= 0")
	}
	return nil
}

type Privacy struct {
	ID               int64   `json:"privacy_id"`
	DriverID         int64   `json:"driver_id"`
	DataSharingMode  *string `json:"data_sharing_mode,omitempty"`
	LocationAccuracy *string `json:"location_accuracy,omitempty"`
	LocalCaching     *bool   `json:"local_caching,omitempty"`
}

type PrivacyInput struct {
	DataSharingMode  *string `json:"data_sharing_mode"`
	LocationAccuracy *string `json:"location_accuracy"`
	LocalCaching     *bool   `json:"local_caching"`
}

func (in *PrivacyInput) Validate() error {
	if err := maxLen("data_sharing_mode", in.DataSharingMode, 50); err != nil {
		return err
	}
	return maxLen("location_accuracy", in.LocationAccuracy, 50)
}

type Notification struct {
	ID               int64 `json:"notification_id"`
	DriverID         int64 `json:"driver_id"`
	PushEnabled      *bool `json:"push_enabled,omitempty"`
	SoundEnabled     *bool `json:"sound_enabled,omitempty"`
	VibrationEnabled *bool `json:"vibration_enabled,omitempty"`
	Volume           *int  `json:"volume,omitempty"`
}

type NotificationInput struct {
	PushEnabled      *bool `json:"push_enabled"`
	SoundEnabled     *bool `json:"sound_enabled"`
	VibrationEnabled *bool `json:"vibration_enabled"`
	Volume           *int  `json:"volume"`
}

func (in *NotificationInput) Validate() error {
	if in.Volume != nil && (*in.Volume < 0 || *in.Volume > 100) {
		return fmt.Errorf("volume must be within [0, 100]")
	}
	return nil
}
