package postgres

import (
	"context"
	"fmt"

	"github.com/drivesafe-lab/drivesafe/internal/core/storage"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
)

// TimeBucketStore resolves dim_time rows with a single upsert statement, so
// concurrent writers for the same hour always agree on one time_id.
type TimeBucketStore struct {
	db storage.DBTX
}

func NewTimeBucketStore(db storage.DBTX) *TimeBucketStore {
	return &TimeBucketStore{db: db}
}

// FindOrCreate implements timebucket.Store.
func (s *TimeBucketStore) FindOrCreate(ctx context.Context, b timebucket.Bucket) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, queryFindOrCreateTimeBucket,
		b.Date.Format("2006-01-02"), b.Year, b.Month, b.Day, b.Hour, b.Weekday,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("find or create time bucket %s: %w", b, err)
	}
	return id, nil
}
