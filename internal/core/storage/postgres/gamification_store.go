package postgres

import (
	"context"
	"fmt"
	"time"

	v1 "github.com/drivesafe-lab/drivesafe/internal/api/v1"
	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
)

type GamificationStore struct {
	db storage.DBTX
}

func NewGamificationStore(db storage.DBTX) *GamificationStore {
	return &GamificationStore{db: db}
}

func (s *GamificationStore) ListBadges(ctx context.Context, limit int) ([]v1.Badge, error) {
	rows, err := s.db.QueryContext(ctx, queryListBadges, limit)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return queryAll(rows, scanBadge)
}

func (s *GamificationStore) CreateEvent(ctx context.Context, timeID int64, req v1.CreateGamificationEventRequest) (*v1.GamificationEvent, error) {
	var ev v1.GamificationEvent
	err := s.db.QueryRowContext(ctx, queryCreateGamificationEvent,
		req.DriverID, timeID, req.BadgeID, req.ScoreChange, req.StreakDays,
	).Scan(&ev.ID, &ev.DriverID, &ev.TimeID, &ev.BadgeID, &ev.ScoreChange, &ev.StreakDays)
	if err != nil {
		return nil, translateWriteError("create gamification event", err)
	}
	return &ev, nil
}

// Leaderboard ranks drivers by total score change in buckets dated on or
// after since.
func (s *GamificationStore) Leaderboard(ctx context.Context, since time.Time, limit int) ([]v1.LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, queryLeaderboardSince, since.Format("2006-01-02"), limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard since %s: %w", since.Format("2006-01-02"), err)
	}
	return queryAll(rows, scanLeaderboardEntry)
}

func scanBadge(row scanner) (*v1.Badge, error) {
	var b v1.Badge
	if err := row.Scan(&b.ID, &b.Name, &b.Description, &b.Category); err != nil {
		return nil, err
	}
	return &b, nil
}

func scanLeaderboardEntry(row scanner) (*v1.LeaderboardEntry, error) {
	var e v1.LeaderboardEntry
	if err := row.Scan(&e.DriverID, &e.Name, &e.TotalScore); err != nil {
		return nil, err
	}
	return &e, nil
}
