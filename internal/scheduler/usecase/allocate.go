package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"task-sync-scheduler/internal/model"
	"task-sync-scheduler/internal/scheduler"
)

// allocateDayByDay walks the horizon [StartDate, EndDate] inclusive,
// one day at a time, recomputing urgency and distributing each day's
// capacity across the still-open tasks. It mutates the run's tasks in
// place and returns the allocation ledger.
func (uc *implUseCase) allocateDayByDay(run *model.PlanningRun) (model.Ledger, error) {
	ledger := make(model.Ledger)

	for day := run.StartDate; !day.After(run.EndDate); day = day.AddDate(0, 0, 1) {
		capacity := run.Capacity[day] // missing day reads as 0

		computeUrgencies(run.Tasks, day)

		var overdue, finite []int
		for i, t := range run.Tasks {
			if !t.Open() {
				continue
			}
			if math.IsInf(t.Urgency, 1) {
				overdue = append(overdue, i)
			} else {
				finite = append(finite, i)
			}
		}

		if capacity <= 0 || (len(overdue) == 0 && len(finite) == 0) {
			continue
		}

		if len(overdue) > 0 {
			// Overdue tasks monopolize the day; finite-urgency tasks
			// receive nothing while any overdue task is still open.
			allocateOverdue(run, ledger, day, overdue, capacity)
		} else {
			allocateProportional(run, ledger, day, finite, capacity)
		}

		if err := checkDayInvariants(run, ledger, day, capacity); err != nil {
			return nil, err
		}
	}

	return ledger, nil
}

// allocateOverdue hands out today's capacity round-robin, one slot at a
// time across the overdue set, skipping tasks that close mid-loop,
// until capacity runs out or every overdue task is closed.
func allocateOverdue(run *model.PlanningRun, ledger model.Ledger, day time.Time, overdue []int, capacity int) {
	for capacity > 0 {
		progressed := false
		for _, i := range overdue {
			t := run.Tasks[i]
			if !t.Open() {
				continue
			}
			t.AllocatedTime++
			ledger.Add(day, i, 1)
			capacity--
			progressed = true
			if capacity == 0 {
				break
			}
		}
		if !progressed {
			break
		}
	}
}

// allocateProportional splits today's capacity across finite-urgency
// tasks by urgency share, flooring each tentative allocation and
// capping it at both the task's remaining need and the remaining
// capacity. Leftover capacity is then handed out one slot at a time in
// descending urgency order, stable on the original list order.
func allocateProportional(run *model.PlanningRun, ledger model.Ledger, day time.Time, open []int, capacity int) {
	totalUrgency := 0.0
	for _, i := range open {
		totalUrgency += run.Tasks[i].Urgency
	}
	if totalUrgency <= 0 {
		// All remaining tasks are weightless; nothing to distribute.
		return
	}

	remaining := capacity
	for _, i := range open {
		t := run.Tasks[i]
		share := int(t.Urgency / totalUrgency * float64(capacity))
		if share > t.Remaining() {
			share = t.Remaining()
		}
		if share > remaining {
			share = remaining
		}
		if share <= 0 {
			continue
		}
		t.AllocatedTime += share
		ledger.Add(day, i, share)
		remaining -= share
	}

	for remaining > 0 {
		stillOpen := make([]int, 0, len(open))
		for _, i := range open {
			if run.Tasks[i].Open() {
				stillOpen = append(stillOpen, i)
			}
		}
		if len(stillOpen) == 0 {
			return
		}
		sort.SliceStable(stillOpen, func(a, b int) bool {
			return run.Tasks[stillOpen[a]].Urgency > run.Tasks[stillOpen[b]].Urgency
		})
		for _, i := range stillOpen {
			if remaining == 0 {
				break
			}
			t := run.Tasks[i]
			if !t.Open() {
				continue
			}
			t.AllocatedTime++
			ledger.Add(day, i, 1)
			remaining--
		}
	}
}

// checkDayInvariants guards the ledger against engine bugs: a violation
// here means inconsistent state, not a recoverable external condition,
// so the run halts.
func checkDayInvariants(run *model.PlanningRun, ledger model.Ledger, day time.Time, capacity int) error {
	if used := ledger.SlotsOn(day); used > capacity {
		return fmt.Errorf("%w: day %s committed %d slots over capacity %d",
			scheduler.ErrAllocationInvariant, day.Format("2006-01-02"), used, capacity)
	}
	for i, t := range run.Tasks {
		if t.AllocatedTime > t.RequiredTime {
			return fmt.Errorf("%w: task %d (%q) allocated %d over required %d",
				scheduler.ErrAllocationInvariant, i, t.Title, t.AllocatedTime, t.RequiredTime)
		}
	}
	return nil
}
