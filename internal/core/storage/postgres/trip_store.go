package postgres

import (
	"context"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

type TripStore struct {
	db storage.DBTX
}

func NewTripStore(db storage.DBTX) *TripStore {
	return &TripStore{db: db}
}

func (s *TripStore) List(ctx context.Context, limit int) ([]v1.Trip, error) {
	rows, err := s.db.QueryContext(ctx, queryListTrips, limit)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return queryAll(rows, scanTrip)
}

func (s *TripStore) ListByDriver(ctx context.Context, driverID int64, limit int) ([]v1.Trip, error) {
	rows, err := s.db.QueryContext(ctx, queryListTripsByDriver, driverID, limit)
	if err != nil {
		return nil, fmt.Errorf("list trips for driver %d: %w", driverID, err)
	}
	return queryAll(rows, scanTrip)
}

func (s *TripStore) Get(ctx context.Context, id int64) (*v1.Trip, error) {
	t, err := queryOne(s.db.QueryRowContext(ctx, queryGetTrip, id), scanTrip)
	if err != nil {
		return nil, fmt.Errorf("get trip %d: %w", id, err)
	}
	return t, nil
}

// Create inserts a trip fact row against an already resolved time bucket.
func (s *TripStore) Create(ctx context.Context, timeID int64, req v1.CreateTripRequest) (*v1.Trip, error) {
	t, err := scanTrip(s.db.QueryRowContext(ctx, queryCreateTrip,
		req.DriverID, req.VehicleID, timeID,
		req.DistanceKm, req.AvgSpeed, req.HarshEvents,
		req.EcoScore, req.SafetyScore, req.TripDurationSec, req.MaxSpeed,
	))
	if err != nil {
		return nil, translateWriteError("create trip", err)
	}
	return t, nil
}

func (s *TripStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, queryDeleteTrip, id)
	if err != nil {
		return false, translateDeleteError(fmt.Sprintf("delete trip %d", id), err)
	}
	return deleted(res)
}

// SummaryByDriver returns unrounded averages over every trip of the driver.
func (s *TripStore) SummaryByDriver(ctx context.Context, driverID int64) (v1.TripSummary, error) {
	var sum v1.TripSummary
	err := s.db.QueryRowContext(ctx, queryTripSummaryByDriver, driverID).
		Scan(&sum.TotalTrips, &sum.AvgSafetyScore, &sum.AvgEcoScore)
	if err != nil {
		return v1.TripSummary{}, fmt.Errorf("trip summary for driver %d: %w", driverID, err)
	}
	return sum, nil
}

func scanTrip(row scanner) (*v1.Trip, error) {
	var t v1.Trip
	err := row.Scan(
		&t.ID, &t.DriverID, &t.VehicleID, &t.TimeID,
		&t.DistanceKm, &t.AvgSpeed, &t.HarshEvents,
		&t.EcoScore, &t.SafetyScore, &t.TripDurationSec, &t.MaxSpeed,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
