package gcalendar

import (
	"context"
	"time"

	"task-sync-scheduler/pkg/gcalendar"
)

// DailyBookedHours returns booked hours for every day in [start, end).
// Days already cached are served locally; a single miss refetches the
// whole range so the calendar is read at most once per run.
func (s *implCapacitySource) DailyBookedHours(ctx context.Context, start, end time.Time) (map[time.Time]float64, error) {
	booked := make(map[time.Time]float64)

	complete := true
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		hours, ok := s.cache.Get(s.cacheKey(day))
		if !ok {
			complete = false
			break
		}
		booked[day] = hours
	}
	if complete && len(booked) > 0 {
		s.l.Debugf(ctx, "capacity: booked hours for %s..%s served from cache",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
		return booked, nil
	}

	fetched, err := s.client.DailyBookedHours(ctx, gcalendar.BookedHoursRequest{
		CalendarID: s.calendarID,
		Start:      start,
		End:        end,
	})
	if err != nil {
		return nil, err
	}

	for day, hours := range fetched {
		s.cache.Add(s.cacheKey(day), hours)
	}

	return fetched, nil
}

func (s *implCapacitySource) cacheKey(day time.Time) string {
	return s.calendarID + "|" + day.Format("2006-01-02")
}
