package scheduler

import "time"

// TaskItem is one unit of work submitted by the caller.
type TaskItem struct {
	Title        string
	RequiredTime int    // slots needed, >= 0
	Deadline     string // "YYYY-MM-DD", empty means due immediately
	Priority     string // optional caller hint, passed through untouched
}

// PlanInput is the input for one end-to-end planning run.
type PlanInput struct {
	Tasks     []TaskItem
	StartDate string // "YYYY-MM-DD", defaults to today
	EndDate   string // "YYYY-MM-DD", defaults to StartDate + configured horizon
	ListTitle string // external task list label, defaults to the configured title
}

// PlannedTask is a task's final state after allocation.
type PlannedTask struct {
	Title         string
	RequiredTime  int
	AllocatedTime int
	Deadline      *time.Time
	Priority      string
	Completed     bool // requiredTime fully allocated within the horizon
}

// WriteFailure records one external write that could not be materialized.
type WriteFailure struct {
	Day    string
	Title  string
	Kind   string // "parent" or "subtask"
	Reason string
}

// WriteReport aggregates the outcome of the external write phase.
// Failures never abort a run; callers inspect the report for completeness.
type WriteReport struct {
	ParentsCreated  int
	SubtasksCreated int
	Failures        []WriteFailure
}

// PlanOutput is the result of one planning run.
// AllocatedSlots is keyed day ("YYYY-MM-DD") then display title; duplicate
// input titles are disambiguated with a " #k" suffix so distinct tasks
// never merge.
type PlanOutput struct {
	RunID          string
	Tasks          []PlannedTask
	AllocatedSlots map[string]map[string]int
	TaskListID     string
	Report         WriteReport
}
