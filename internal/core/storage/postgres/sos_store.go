package postgres

import (
	"context"
	"database/sql"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
)

// SOSStore writes a location dimension row and its SOS fact row together,
// so it holds the pool rather than a DBTX.
type SOSStore struct {
	db *sql.DB
}

func NewSOSStore(db *sql.DB) *SOSStore {
	return &SOSStore{db: db}
}

// Create inserts the location and the SOS fact in one transaction. The new
// event starts unresolved.
func (s *SOSStore) Create(ctx context.Context, timeID int64, req v1.CreateSOSRequest) (*v1.SOSEvent, error) {
	var ev *v1.SOSEvent
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		var locationID int64
		err := tx.QueryRowContext(ctx, queryCreateLocation,
			req.Latitude, req.Longitude, req.City, req.RoadType,
		).Scan(&locationID)
		if err != nil {
			return fmt.Errorf("insert location: %w", err)
		}

		ev, err = scanSOS(tx.QueryRowContext(ctx, queryCreateSOS,
			req.DriverID, req.VehicleID, timeID, locationID,
			req.Severity, req.SignatureValid, req.AnomalyScore,
		))
		return err
	})
	if err != nil {
		return nil, translateWriteError("create sos", err)
	}
	return ev, nil
}

func (s *SOSStore) Get(ctx context.Context, id int64) (*v1.SOSEvent, error) {
	ev, err := queryOne(s.db.QueryRowContext(ctx, queryGetSOS, id), scanSOS)
	if err != nil {
		return nil, fmt.Errorf("get sos %d: %w", id, err)
	}
	return ev, nil
}

func (s *SOSStore) ListUnresolved(ctx context.Context, limit int) ([]v1.SOSEvent, error) {
	rows, err := s.db.QueryContext(ctx, queryListUnresolvedSOS, limit)
	if err != nil {
		return nil, fmt.Errorf("list unresolved sos: %w", err)
	}
	return queryAll(rows, scanSOS)
}

// Resolve marks the event resolved. Returns nil when it does not exist.
func (s *SOSStore) Resolve(ctx context.Context, id int64) (*v1.SOSEvent, error) {
	ev, err := queryOne(s.db.QueryRowContext(ctx, queryResolveSOS, id), scanSOS)
	if err != nil {
		return nil, fmt.Errorf("resolve sos %d: %w", id, err)
	}
	return ev, nil
}

func scanSOS(row scanner) (*v1.SOSEvent, error) {
	var (
		ev       v1.SOSEvent
		resolved sql.NullBool
	)
	err := row.Scan(
		&ev.ID, &ev.DriverID, &ev.VehicleID, &ev.TimeID, &ev.LocationID,
		&ev.Severity, &ev.SignatureValid, &ev.AnomalyScore, &resolved,
	)
	if err != nil {
		return nil, err
	}
	ev.Resolved = resolved.Valid && resolved.Bool
	return &ev, nil
}
