package usecase

import "time"

// slotsForBookedHours converts one day's calendar occupancy into its
// allocatable slot count. Fixed step function; negative input is
// treated as an empty day.
func slotsForBookedHours(bookedHours float64) int {
	if bookedHours < 0 {
		bookedHours = 0
	}
	switch {
	case bookedHours < 2:
		return 5
	case bookedHours < 4:
		return 4
	case bookedHours < 6:
		return 3
	default:
		return 2
	}
}

// buildDayCapacity applies the step function independently per day.
func buildDayCapacity(booked map[time.Time]float64) map[time.Time]int {
	capacity := make(map[time.Time]int, len(booked))
	for day, hours := range booked {
		capacity[day] = slotsForBookedHours(hours)
	}
	return capacity
}
