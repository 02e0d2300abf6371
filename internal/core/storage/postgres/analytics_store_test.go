package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsStore_TripsOnEmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryTripsAnalytics)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "d", "s", "e", "sf"}).
			AddRow(int64(0), "0", "0", "0", "0"))

	a, err := NewAnalyticsStore(db).Trips(context.Background())
	require.NoError(t, err)
	require.Zero(t, a.TotalTrips)
	require.True(t, decimal.Zero.Equal(a.AvgSafetyScore))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsStore_SOS(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(querySOSAnalytics)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "resolved", "unresolved"}).
			AddRow(int64(5), int64(2), int64(3)))

	a, err := NewAnalyticsStore(db).SOS(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(5), a.TotalSOS)
	require.Equal(t, int64(2), a.Resolved)
	require.Equal(t, int64(3), a.Unresolved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsStore_LeaderboardAllTime(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryLeaderboardAllTime)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "name", "score"}).
			AddRow(int64(3), "Grace", int64(310)))

	entries, err := NewAnalyticsStore(db).Leaderboard(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, int64(310), entries[0].Score)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGamificationStore_LeaderboardUsesCutoffDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryLeaderboardSince)).
		WithArgs("2024-06-01", 10).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id", "name", "total"}).
			AddRow(int64(2), "Ada", int64(40)).
			AddRow(int64(9), "Driver 9", int64(15)))

	since := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	entries, err := NewGamificationStore(db).Leaderboard(context.Background(), since, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Driver 9", entries[1].Name)
	require.Equal(t, int64(40), entries[0].TotalScore)
	require.NoError(t, mock.ExpectationsWereMet())
}
