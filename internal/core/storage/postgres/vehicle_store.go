package postgres

import (
	"context"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

type VehicleStore struct {
	db storage.DBTX
}

func NewVehicleStore(db storage.DBTX) *VehicleStore {
	return &VehicleStore{db: db}
}

func (s *VehicleStore) List(ctx context.Context, limit int) ([]v1.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, queryListVehicles, limit)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return queryAll(rows, scanVehicle)
}

func (s *VehicleStore) Get(ctx context.Context, id int64) (*v1.Vehicle, error) {
	v, err := queryOne(s.db.QueryRowContext(ctx, queryGetVehicle, id), scanVehicle)
	if err != nil {
		return nil, fmt.Errorf("get vehicle %d: %w", id, err)
	}
	return v, nil
}

func (s *VehicleStore) Create(ctx context.Context, in v1.VehicleInput) (*v1.Vehicle, error) {
	v, err := scanVehicle(s.db.QueryRowContext(ctx, queryCreateVehicle,
		in.Make, in.Model, in.Year, in.Type))
	if err != nil {
		return nil, translateWriteError("create vehicle", err)
	}
	return v, nil
}

func (s *VehicleStore) Update(ctx context.Context, id int64, in v1.VehicleInput) (*v1.Vehicle, error) {
	v, err := queryOne(s.db.QueryRowContext(ctx, queryUpdateVehicle,
		id, in.Make, in.Model, in.Year, in.Type), scanVehicle)
	if err != nil {
		return nil, translateWriteError(fmt.Sprintf("update vehicle %d", id), err)
	}
	return v, nil
}

func (s *VehicleStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, queryDeleteVehicle, id)
	if err != nil {
		return false, translateDeleteError(fmt.Sprintf("delete vehicle %d", id), err)
	}
	return deleted(res)
}

func scanVehicle(row scanner) (*v1.Vehicle, error) {
	var v v1.Vehicle
	if err := row.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.Type); err != nil {
		return nil, err
	}
	return &v, nil
}
