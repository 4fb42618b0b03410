package model

import "time"

// Ledger is the day x task matrix of committed allocations for one
// planning run. Tasks are keyed by their index in the run's task list,
// not by title, so two tasks that happen to share a title never merge.
type Ledger map[time.Time]map[int]int

// Add accumulates n slots for the given task on the given day. Updates
// are additive so a task receiving slots from more than one allocation
// pass within a day is recorded correctly.
func (l Ledger) Add(day time.Time, taskIdx, n int) {
	if n == 0 {
		return
	}
	row, ok := l[day]
	if !ok {
		row = make(map[int]int)
		l[day] = row
	}
	row[taskIdx] += n
}

// SlotsOn returns the total slots committed on the given day.
func (l Ledger) SlotsOn(day time.Time) int {
	total := 0
	for _, n := range l[day] {
		total += n
	}
	return total
}

// Days returns every day with at least one committed allocation,
// in unspecified order.
func (l Ledger) Days() []time.Time {
	days := make([]time.Time, 0, len(l))
	for d := range l {
		days = append(days, d)
	}
	return days
}
