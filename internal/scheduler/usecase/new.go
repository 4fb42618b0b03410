package usecase

import (
	"time"

	"golang.org/x/time/rate"

	"task-sync-scheduler/internal/scheduler/repository"
	pkgLog "task-sync-scheduler/pkg/log"
)

// Config carries the tunables for planning runs.
type Config struct {
	// HorizonDays is the default horizon length when the caller omits
	// an end date.
	HorizonDays int
	// ListTitle is the default label for the per-run external task list.
	ListTitle string
	// DueHour is the hour-of-day (0-23) at which materialized to-do
	// items fall due.
	DueHour int
	// Timezone is the IANA zone used for "today" and due timestamps.
	Timezone string
	// WriteWorkers bounds the parallelism of the external write phase.
	WriteWorkers int
	// WritesPerSecond throttles Tasks API calls. 0 disables throttling.
	WritesPerSecond float64
}

type implUseCase struct {
	l        pkgLog.Logger
	capacity repository.CapacitySource
	sink     repository.TaskSink
	cfg      Config
	limiter  *rate.Limiter
	location *time.Location
	now      func() time.Time
}

// New creates a new scheduler UseCase instance.
func New(l pkgLog.Logger, capacity repository.CapacitySource, sink repository.TaskSink, cfg Config) *implUseCase {
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = 7
	}
	if cfg.ListTitle == "" {
		cfg.ListTitle = "AI hackathon Tasks"
	}
	if cfg.DueHour <= 0 {
		cfg.DueHour = 17
	}
	if cfg.WriteWorkers <= 0 {
		cfg.WriteWorkers = 4
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.WritesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.WritesPerSecond), 1)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		location = time.UTC
	}

	return &implUseCase{
		l:        l,
		capacity: capacity,
		sink:     sink,
		cfg:      cfg,
		limiter:  limiter,
		location: location,
		now:      time.Now,
	}
}
