package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	AllDay    bool
	Location  string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// BookedHoursRequest is the input for aggregating daily booked hours.
// The range is half-open: every day in [Start, End) appears in the
// result, defaulting to 0.0 when no event touches it.
type BookedHoursRequest struct {
	CalendarID string
	Start      time.Time
	End        time.Time
}

// AllDayEventHours is the nominal occupancy charged for each day an
// all-day event spans.
const AllDayEventHours = 8.0
