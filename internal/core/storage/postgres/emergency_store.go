package postgres

import (
	"context"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

type EmergencyStore struct {
	db storage.DBTX
}

func NewEmergencyStore(db storage.DBTX) *EmergencyStore {
	return &EmergencyStore{db: db}
}

func (s *EmergencyStore) ListNumbers(ctx context.Context) ([]v1.EmergencyNumber, error) {
	rows, err := s.db.QueryContext(ctx, queryListEmergencyNumbers)
	if err != nil {
		return nil, fmt.Errorf("list emergency numbers: %w", err)
	}
	return queryAll(rows, scanEmergencyNumber)
}

func (s *EmergencyStore) GetNumber(ctx context.Context, countryCode string) (*v1.EmergencyNumber, error) {
	n, err := queryOne(s.db.QueryRowContext(ctx, queryGetEmergencyNumber, countryCode), scanEmergencyNumber)
	if err != nil {
		return nil, fmt.Errorf("get emergency number %s: %w", countryCode, err)
	}
	return n, nil
}

func (s *EmergencyStore) GetProfile(ctx context.Context, driverID int64) (*v1.EmergencyProfile, error) {
	p, err := queryOne(s.db.QueryRowContext(ctx, queryGetEmergencyProfile, driverID), scanEmergencyProfile)
	if err != nil {
		return nil, fmt.Errorf("get emergency profile for driver %d: %w", driverID, err)
	}
	return p, nil
}

// PutProfile replaces the driver's emergency profile, creating it if needed.
func (s *EmergencyStore) PutProfile(ctx context.Context, driverID int64, in v1.EmergencyProfileInput) (*v1.EmergencyProfile, error) {
	p, err := scanEmergencyProfile(s.db.QueryRowContext(ctx, queryPutEmergencyProfile,
		driverID, in.AutoContactEnabled, in.EmergencyCountryCode, in.ShareLocation, in.ShareMedicalInfo))
	if err != nil {
		return nil, translateWriteError(fmt.Sprintf("put emergency profile for driver %d", driverID), err)
	}
	return p, nil
}

func scanEmergencyNumber(row scanner) (*v1.EmergencyNumber, error) {
	var n v1.EmergencyNumber
	if err := row.Scan(&n.CountryCode, &n.CountryName, &n.AmbulanceNumber, &n.Notes); err != nil {
		return nil, err
	}
	return &n, nil
}

func scanEmergencyProfile(row scanner) (*v1.EmergencyProfile, error) {
	var p v1.EmergencyProfile
	err := row.Scan(&p.ID, &p.DriverID, &p.AutoContactEnabled,
		&p.EmergencyCountryCode, &p.ShareLocation, &p.ShareMedicalInfo)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
