package model

import "time"

// Task is the mutable per-run accumulator for one unit of planned work.
// It is owned exclusively by a single planning run and never shared
// across concurrent runs.
type Task struct {
	Title         string
	RequiredTime  int        // total slots needed, >= 0
	AllocatedTime int        // slots allocated so far in this run, starts at 0
	Deadline      *time.Time // nil means "due immediately" for urgency purposes
	Priority      string     // optional caller hint, passed through untouched
	Urgency       float64    // recomputed every simulated day, never persisted
}

// Open reports whether the task can still receive allocations.
func (t *Task) Open() bool {
	return t.AllocatedTime < t.RequiredTime
}

// Remaining returns the number of slots still needed.
func (t *Task) Remaining() int {
	return t.RequiredTime - t.AllocatedTime
}

// PlanningRun binds a task list, an inclusive horizon and a day-capacity
// map for one scheduling invocation. It has no persisted identity; the ID
// exists for log correlation only.
type PlanningRun struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Capacity  map[time.Time]int // day -> allocatable slots, read-only during the run
	Tasks     []*Task
}

// DayOf truncates t to its calendar date at midnight UTC. All day-keyed
// maps in a planning run use this normalization.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
