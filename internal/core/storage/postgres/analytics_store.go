package postgres

import (
	"context"
	"fmt"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

// AnalyticsStore runs fleet-wide aggregates over the fact tables.
type AnalyticsStore struct {
	db storage.DBTX
}

func NewAnalyticsStore(db storage.DBTX) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

func (s *AnalyticsStore) Trips(ctx context.Context) (v1.TripsAnalytics, error) {
	var a v1.TripsAnalytics
	err := s.db.QueryRowContext(ctx, queryTripsAnalytics).Scan(
		&a.TotalTrips, &a.AvgDistanceKm, &a.AvgSpeed, &a.AvgEcoScore, &a.AvgSafetyScore,
	)
	if err != nil {
		return v1.TripsAnalytics{}, fmt.Errorf("trips analytics: %w", err)
	}
	return a, nil
}

func (s *AnalyticsStore) SOS(ctx context.Context) (v1.SOSAnalytics, error) {
	var a v1.SOSAnalytics
	if err := s.db.QueryRowContext(ctx, querySOSAnalytics).Scan(&a.TotalSOS, &a.Resolved, &a.Unresolved); err != nil {
		return v1.SOSAnalytics{}, fmt.Errorf("sos analytics: %w", err)
	}
	return a, nil
}

// Leaderboard ranks drivers by all-time score change.
func (s *AnalyticsStore) Leaderboard(ctx context.Context, limit int) ([]v1.ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, queryLeaderboardAllTime, limit)
	if err != nil {
		return nil, fmt.Errorf("all-time leaderboard: %w", err)
	}
	return queryAll(rows, scanScoreEntry)
}

func scanScoreEntry(row scanner) (*v1.ScoreEntry, error) {
	var e v1.ScoreEntry
	if err := row.Scan(&e.DriverID, &e.Name, &e.Score); err != nil {
		return nil, err
	}
	return &e, nil
}
