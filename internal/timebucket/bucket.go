// Package timebucket maps event timestamps onto rows of the hourly time dimension.
package timebucket

import (
	"context"
	"fmt"
	"time"
)

// Bucket is one calendar hour in UTC. Date is midnight of the bucket's day.
// Weekday counts from Monday=0 to Sunday=6.
type Bucket struct {
	Date    time.Time
	Year    int
	Month   int
	Day     int
	Hour    int
	Weekday int
}

// FromTime decomposes t (converted to UTC) into its bucket.
func FromTime(t time.Time) Bucket {
	t = t.UTC()
	return Bucket{
		Date:    time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Weekday: (int(t.Weekday()) + 6) % 7,
	}
}

// Start returns the first instant covered by the bucket.
func (b Bucket) Start() time.Time {
	return b.Date.Add(time.Duration(b.Hour) * time.Hour)
}

func (b Bucket) String() string {
	return fmt.Sprintf("%s %02d:00 (wd %d)", b.Date.Format("2006-01-02"), b.Hour, b.Weekday)
}

// Store finds the surrogate key of a bucket row, creating the row when absent.
// Implementations must be safe for concurrent use and must return the same id
// for equal buckets.
type Store interface {
	FindOrCreate(ctx context.Context, b Bucket) (int64, error)
}

// Resolve returns the bucket id for ts. A zero ts resolves the current hour.
// Store errors are returned unchanged.
func Resolve(ctx context.Context, store Store, ts time.Time) (int64, error) {
	if ts.IsZero() {
		ts = time.Now()
	}
	return store.FindOrCreate(ctx, FromTime(ts))
}
