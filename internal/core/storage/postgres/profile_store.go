package postgres

import (
	"context"
	"database/sql"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

// ProfileStore holds the per-driver profile dimensions. Every table except
// dim_contact has at most one row per driver.
type ProfileStore struct {
	db storage.DBTX
}

func NewProfileStore(db storage.DBTX) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) ListContacts(ctx context.Context, driverID int64) ([]v1.Contact, error) {
	rows, err := s.db.QueryContext(ctx, queryListContacts, driverID)
	if err != nil {
		return nil, fmt.Errorf("list contacts for driver %d: %w", driverID, err)
	}
	return queryAll(rows, scanContact)
}

func (s *ProfileStore) CreateContact(ctx context.Context, driverID int64, in v1.ContactInput) (*v1.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx, queryCreateContact,
		driverID, in.Name, in.Relationship, in.Phone, in.Email, in.IsPrimary))
	if err != nil {
		return nil, translateWriteError(fmt.Sprintf("create contact for driver %d", driverID), err)
	}
	return c, nil
}

func (s *ProfileStore) GetMedical(ctx context.Context, driverID int64) (*v1.Medical, error) {
	return getByDriver(ctx, s.db, "medical", queryGetMedical, driverID, scanMedical)
}

func (s *ProfileStore) UpsertMedical(ctx context.Context, driverID int64, in v1.MedicalInput) (*v1.Medical, error) {
	return upsertByDriver(ctx, s.db, "medical", queryUpsertMedical, driverID, scanMedical,
		in.BloodType, in.Insurance, in.Allergies, in.Medications, in.Conditions, in.Instructions)
}

func (s *ProfileStore) GetSettings(ctx context.Context, driverID int64) (*v1.Settings, error) {
	return getByDriver(ctx, s.db, "settings", queryGetSettings, driverID, scanSettings)
}

func (s *ProfileStore) UpsertSettings(ctx context.Context, driverID int64, in v1.SettingsInput) (*v1.Settings, error) {
	return upsertByDriver(ctx, s.db, "settings", queryUpsertSettings, driverID, scanSettings,
		in.DetectionSensitivity, in.AutoSOSDelay, in.AccelerometerEnabled,
		in.GyroscopeEnabled, in.GPSEnabled, in.MicrophoneEnabled)
}

func (s *ProfileStore) GetPrivacy(ctx context.Context, driverID int64) (*v1.Privacy, error) {
	return getByDriver(ctx, s.db, "privacy", queryGetPrivacy, driverID, scanPrivacy)
}

func (s *ProfileStore) UpsertPrivacy(ctx context.Context, driverID int64, in v1.PrivacyInput) (*v1.Privacy, error) {
	return upsertByDriver(ctx, s.db, "privacy", queryUpsertPrivacy, driverID, scanPrivacy,
		in.DataSharingMode, in.LocationAccuracy, in.LocalCaching)
}

func (s *ProfileStore) GetNotifications(ctx context.Context, driverID int64) (*v1.Notification, error) {
	return getByDriver(ctx, s.db, "notifications", queryGetNotifications, driverID, scanNotification)
}

func (s *ProfileStore) UpsertNotifications(ctx context.Context, driverID int64, in v1.NotificationInput) (*v1.Notification, error) {
	return upsertByDriver(ctx, s.db, "notifications", queryUpsertNotifications, driverID, scanNotification,
		in.PushEnabled, in.SoundEnabled, in.VibrationEnabled, in.Volume)
}

func getByDriver[T any](ctx context.Context, db storage.DBTX, what, query string, driverID int64, scan func(scanner) (*T, error)) (*T, error) {
	v, err := queryOne(db.QueryRowContext(ctx, query, driverID), scan)
	if err != nil {
		return nil, fmt.Errorf("get %s for driver %d: %w", what, driverID, err)
	}
	return v, nil
}

// upsertByDriver runs a single-row upsert keyed on driver_id. fields follow
// driver_id in the statement's parameter order.
func upsertByDriver[T any](ctx context.Context, db storage.DBTX, what, query string, driverID int64, scan func(scanner) (*T, error), fields ...interface{}) (*T, error) {
	args := append([]interface{}{driverID}, fields...)
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateWriteError(fmt.Sprintf("upsert %s for driver %d", what, driverID), err)
	}
	return v, nil
}

func scanContact(row scanner) (*v1.Contact, error) {
	var (
		c       v1.Contact
		primary sql.NullBool
	)
	if err := row.Scan(&c.ID, &c.DriverID, &c.Name, &c.Relationship, &c.Phone, &c.Email, &primary); err != nil {
		return nil, err
	}
	c.IsPrimary = primary.Valid && primary.Bool
	return &c, nil
}

func scanMedical(row scanner) (*v1.Medical, error) {
	var m v1.Medical
	err := row.Scan(&m.ID, &m.DriverID, &m.BloodType, &m.Insurance, &m.Allergies,
		&m.Medications, &m.Conditions, &m.Instructions)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanSettings(row scanner) (*v1.Settings, error) {
	var s v1.Settings
	err := row.Scan(&s.ID, &s.DriverID, &s.DetectionSensitivity, &s.AutoSOSDelay,
		&s.AccelerometerEnabled, &s.GyroscopeEnabled, &s.GPSEnabled, &s.MicrophoneEnabled)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanPrivacy(row scanner) (*v1.Privacy, error) {
	var p v1.Privacy
	if err := row.Scan(&p.ID, &p.DriverID, &p.DataSharingMode, &p.LocationAccuracy, &p.LocalCaching); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanNotification(row scanner) (*v1.Notification, error) {
	var n v1.Notification
	err := row.Scan(&n.ID, &n.DriverID, &n.PushEnabled, &n.SoundEnabled, &n.VibrationEnabled, &n.Volume)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
