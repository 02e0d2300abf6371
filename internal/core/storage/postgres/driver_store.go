package postgres

import (
	"context"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

type DriverStore struct {
	db storage.DBTX
}

func NewDriverStore(db storage.DBTX) *DriverStore {
	return &DriverStore{db: db}
}

func (s *DriverStore) List(ctx context.Context, limit int) ([]v1.Driver, error) {
	rows, err := s.db.QueryContext(ctx, queryListDrivers, limit)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return queryAll(rows, scanDriver)
}

// Get returns nil when the driver does not exist.
func (s *DriverStore) Get(ctx context.Context, id int64) (*v1.Driver, error) {
	d, err := queryOne(s.db.QueryRowContext(ctx, queryGetDriver, id), scanDriver)
	if err != nil {
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return d, nil
}

func (s *DriverStore) Create(ctx context.Context, in v1.DriverInput) (*v1.Driver, error) {
	d, err := scanDriver(s.db.QueryRowContext(ctx, queryCreateDriver,
		in.Name, in.LicenseType, in.Email, in.Phone, in.DateOfBirth))
	if err != nil {
		return nil, translateWriteError("create driver", err)
	}
	return d, nil
}

// Update applies the non-nil fields of in. Returns nil when the driver does
// not exist.
func (s *DriverStore) Update(ctx context.Context, id int64, in v1.DriverInput) (*v1.Driver, error) {
	d, err := queryOne(s.db.QueryRowContext(ctx, queryUpdateDriver,
		id, in.Name, in.LicenseType, in.Email, in.Phone, in.DateOfBirth), scanDriver)
	if err != nil {
		return nil, translateWriteError(fmt.Sprintf("update driver %d", id), err)
	}
	return d, nil
}

func (s *DriverStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, queryDeleteDriver, id)
	if err != nil {
		return false, translateDeleteError(fmt.Sprintf("delete driver %d", id), err)
	}
	return deleted(res)
}

func scanDriver(row scanner) (*v1.Driver, error) {
	var d v1.Driver
	if err := row.Scan(&d.ID, &d.Name, &d.LicenseType, &d.Email, &d.Phone, &d.DateOfBirth); err != nil {
		return nil, err
	}
	return &d, nil
}
