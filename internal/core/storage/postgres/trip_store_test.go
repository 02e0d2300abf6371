package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var tripRowColumns = []string{
	"trip_id", "driver_id", "vehicle_id", "time_id", "distance_km", "avg_speed",
	"harsh_events", "eco_score", "safety_score", "trip_duration_sec", "max_speed",
}

func TestTripStore_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	req := v1.CreateTripRequest{
		DriverID: 1, VehicleID: 2, DistanceKm: 12.5, AvgSpeed: 48,
		HarshEvents: 1, EcoScore: 80, SafetyScore: 91.5, TripDurationSec: 900, MaxSpeed: 88,
	}

	mock.ExpectQuery(regexp.QuoteMeta(queryCreateTrip)).
		WithArgs(int64(1), int64(2), int64(33), 12.5, 48.0, 1, 80.0, 91.5, 900, 88.0).
		WillReturnRows(sqlmock.NewRows(tripRowColumns).
			AddRow(int64(100), int64(1), int64(2), int64(33), 12.5, 48.0, int64(1), 80.0, 91.5, int64(900), 88.0))

	trip, err := NewTripStore(db).Create(context.Background(), 33, req)
	require.NoError(t, err)
	require.Equal(t, int64(100), trip.ID)
	require.Equal(t, int64(33), trip.TimeID)
	require.Equal(t, 91.5, *trip.SafetyScore)
	require.Equal(t, 900, *trip.TripDurationSec)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTripStore_CreateUnknownDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryCreateTrip)).
		WillReturnError(&pq.Error{Code: pgForeignKeyViolation})

	_, err = NewTripStore(db).Create(context.Background(), 1, v1.CreateTripRequest{DriverID: 999, VehicleID: 1})
	require.ErrorIs(t, err, storage.ErrInvalidReference)
}

func TestTripStore_SummaryByDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryTripSummaryByDriver)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg_safety", "avg_eco"}).
			AddRow(int64(3), "86.6666666666666667", "70.0000000000000000"))

	sum, err := NewTripStore(db).SummaryByDriver(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, int64(3), sum.TotalTrips)
	require.True(t, decimal.RequireFromString("86.67").Equal(sum.AvgSafetyScore.Round(2)))
	require.True(t, decimal.NewFromInt(70).Equal(sum.AvgEcoScore))
	require.NoError(t, mock.ExpectationsWereMet())
}
