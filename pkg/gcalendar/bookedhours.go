package gcalendar

import (
	"context"
	"time"
)

// DailyBookedHours aggregates calendar occupancy per day over
// [req.Start, req.End). Every day in the range appears in the result,
// 0.0 when nothing is booked; an empty range yields an empty map
// without touching the calendar. Timed events contribute their exact
// duration in hours, attributed to the day they start on. All-day
// events contribute AllDayEventHours to every day they span. Events
// attributed to days outside the range are ignored.
func (c *Client) DailyBookedHours(ctx context.Context, req BookedHoursRequest) (map[time.Time]float64, error) {
	start := dateOnly(req.Start)
	end := dateOnly(req.End)

	booked := make(map[time.Time]float64)
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		booked[day] = 0.0
	}
	if len(booked) == 0 {
		return booked, nil
	}

	events, err := c.ListEvents(ctx, ListEventsRequest{
		CalendarID: req.CalendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		if ev.AllDay {
			// End date of an all-day event is exclusive.
			for day := dateOnly(ev.StartTime); day.Before(dateOnly(ev.EndTime)); day = day.AddDate(0, 0, 1) {
				if _, ok := booked[day]; ok {
					booked[day] += AllDayEventHours
				}
			}
			continue
		}

		day := dateOnly(ev.StartTime)
		if _, ok := booked[day]; !ok {
			continue
		}
		booked[day] += ev.EndTime.Sub(ev.StartTime).Hours()
	}

	return booked, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
