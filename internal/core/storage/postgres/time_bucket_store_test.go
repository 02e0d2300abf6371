package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/drivesafe-lab/drivesafe/internal/timebucket"
	"github.com/stretchr/testify/require"
)

func TestTimeBucketStore_FindOrCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	b := timebucket.FromTime(time.Date(2024, 3, 4, 15, 42, 0, 0, time.UTC))

	// 2024-03-04 is a Monday.
	mock.ExpectQuery(regexp.QuoteMeta(queryFindOrCreateTimeBucket)).
		WithArgs("2024-03-04", 2024, 3, 4, 15, 0).
		WillReturnRows(sqlmock.NewRows([]string{"time_id"}).AddRow(int64(11)))

	id, err := NewTimeBucketStore(db).FindOrCreate(context.Background(), b)
	require.NoError(t, err)
	require.Equal(t, int64(11), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeBucketStore_FindOrCreatePropagatesErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection refused")
	mock.ExpectQuery(regexp.QuoteMeta(queryFindOrCreateTimeBucket)).WillReturnError(boom)

	_, err = NewTimeBucketStore(db).FindOrCreate(context.Background(), timebucket.FromTime(time.Now()))
	require.ErrorIs(t, err, boom)
}

func TestTimeBucketStore_ResolveThroughCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Only one statement is expected: the second resolve in the same hour
	// is served from the memo.
	mock.ExpectQuery(regexp.QuoteMeta(queryFindOrCreateTimeBucket)).
		WillReturnRows(sqlmock.NewRows([]string{"time_id"}).AddRow(int64(5)))

	store, err := timebucket.NewCachingStore(NewTimeBucketStore(db), 16)
	require.NoError(t, err)

	ts := time.Date(2024, 3, 4, 15, 1, 0, 0, time.UTC)
	first, err := timebucket.Resolve(context.Background(), store, ts)
	require.NoError(t, err)
	second, err := timebucket.Resolve(context.Background(), store, ts.Add(30*time.Minute))
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.NoError(t, mock.ExpectationsWereMet())
}
