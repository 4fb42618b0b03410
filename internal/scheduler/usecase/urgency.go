package usecase

import (
	"math"
	"time"

	"task-sync-scheduler/internal/model"
)

// daysUntilDeadline returns the whole days from asOf to the task's
// deadline. A missing deadline counts as 0, which makes the task
// overdue from day one.
func daysUntilDeadline(t *model.Task, asOf time.Time) int {
	if t.Deadline == nil {
		return 0
	}
	return int(model.DayOf(*t.Deadline).Sub(model.DayOf(asOf)).Hours() / 24)
}

// computeUrgencies recomputes every task's urgency as of the given day.
// Overdue tasks (deadline on or before asOf, or no deadline) score +Inf;
// otherwise urgency is the workload density requiredTime / daysLeft.
// The denominator shrinks as the horizon advances, so urgency rises
// monotonically for a fixed task while its deadline approaches.
func computeUrgencies(tasks []*model.Task, asOf time.Time) {
	for _, t := range tasks {
		daysLeft := daysUntilDeadline(t, asOf)
		if daysLeft <= 0 {
			t.Urgency = math.Inf(1)
			continue
		}
		t.Urgency = float64(t.RequiredTime) / float64(daysLeft)
	}
}
