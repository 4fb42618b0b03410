package repository

import (
	"context"
	"time"
)

// CapacitySource supplies daily calendar occupancy for a horizon.
// The returned map covers every day in [start, end) with a 0.0 default;
// keys are dates at midnight UTC.
type CapacitySource interface {
	DailyBookedHours(ctx context.Context, start, end time.Time) (map[time.Time]float64, error)
}

// TaskSink materializes allocation results in an external task tracker.
// Implementations own the credential; the scheduler never sees it.
type TaskSink interface {
	// CreateTaskList creates a fresh list for one planning run and
	// returns its identifier.
	CreateTaskList(ctx context.Context, title string) (string, error)

	// CreateTask creates one to-do item and returns its identifier.
	// A non-empty ParentID nests the item under an existing parent.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (string, error)
}

// CreateTaskOptions carries one to-do item write.
type CreateTaskOptions struct {
	ListID   string
	Title    string
	Notes    string
	Due      time.Time
	ParentID string
}
