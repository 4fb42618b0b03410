package gcalendar

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"task-sync-scheduler/internal/scheduler/repository"
	"task-sync-scheduler/pkg/gcalendar"
	pkgLog "task-sync-scheduler/pkg/log"
)

// bookedHoursCacheSize bounds the per-day cache. 512 days is far more
// than any realistic set of overlapping horizons.
const bookedHoursCacheSize = 512

// Lister is the slice of the Calendar client this source needs,
// abstracted for substitution in tests.
type Lister interface {
	DailyBookedHours(ctx context.Context, req gcalendar.BookedHoursRequest) (map[time.Time]float64, error)
}

type implCapacitySource struct {
	client     Lister
	calendarID string
	cache      *lru.Cache[string, float64]
	l          pkgLog.Logger
}

// New creates a CapacitySource backed by Google Calendar. Booked hours
// are cached per (calendar, day) so repeated runs over overlapping
// horizons within one process do not refetch the calendar.
func New(client Lister, calendarID string, l pkgLog.Logger) (repository.CapacitySource, error) {
	cache, err := lru.New[string, float64](bookedHoursCacheSize)
	if err != nil {
		return nil, err
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	return &implCapacitySource{
		client:     client,
		calendarID: calendarID,
		cache:      cache,
		l:          l,
	}, nil
}
