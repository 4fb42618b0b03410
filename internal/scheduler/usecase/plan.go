package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"task-sync-scheduler/internal/model"
	"task-sync-scheduler/internal/scheduler"
)

// Plan runs one end-to-end planning invocation: fetch calendar
// occupancy, derive day capacity, allocate day by day, then materialize
// the ledger as parent/subtask to-dos in the external tracker.
func (uc *implUseCase) Plan(ctx context.Context, input scheduler.PlanInput) (scheduler.PlanOutput, error) {
	tasks, err := buildTasks(input.Tasks)
	if err != nil {
		return scheduler.PlanOutput{}, err
	}

	start, end, err := uc.resolveHorizon(input.StartDate, input.EndDate)
	if err != nil {
		return scheduler.PlanOutput{}, err
	}

	runID := uuid.NewString()
	uc.l.Infof(ctx, "plan %s: %d tasks, horizon %s..%s", runID, len(tasks),
		start.Format(dateLayout), end.Format(dateLayout))

	// Capacity covers [start, end); the final horizon day reads as 0.
	booked, err := uc.capacity.DailyBookedHours(ctx, start, end)
	if err != nil {
		return scheduler.PlanOutput{}, fmt.Errorf("%w: %v", scheduler.ErrCapacitySource, err)
	}

	run := &model.PlanningRun{
		ID:        runID,
		StartDate: start,
		EndDate:   end,
		Capacity:  buildDayCapacity(booked),
		Tasks:     tasks,
	}

	ledger, err := uc.allocateDayByDay(run)
	if err != nil {
		return scheduler.PlanOutput{}, err
	}

	titles := displayTitles(tasks)
	entries := ledgerEntries(ledger, titles)
	uc.l.Infof(ctx, "plan %s: %d ledger entries across %d days", runID, len(entries), len(ledger))

	listTitle := input.ListTitle
	if listTitle == "" {
		listTitle = uc.cfg.ListTitle
	}

	listID, err := uc.sink.CreateTaskList(ctx, listTitle)
	if err != nil {
		// Nothing materialized externally: total failure, distinct from
		// the partial failures recorded in the report.
		return scheduler.PlanOutput{}, fmt.Errorf("%w: %v", scheduler.ErrTaskListCreate, err)
	}

	report := uc.writeLedger(ctx, listID, entries)
	if len(report.Failures) > 0 {
		uc.l.Warnf(ctx, "plan %s: %d external writes failed, task list %s is incomplete",
			runID, len(report.Failures), listID)
	}

	planned := make([]scheduler.PlannedTask, len(tasks))
	for i, t := range tasks {
		planned[i] = scheduler.PlannedTask{
			Title:         titles[i],
			RequiredTime:  t.RequiredTime,
			AllocatedTime: t.AllocatedTime,
			Deadline:      t.Deadline,
			Priority:      t.Priority,
			Completed:     !t.Open(),
		}
	}

	return scheduler.PlanOutput{
		RunID:          runID,
		Tasks:          planned,
		AllocatedSlots: projectLedger(ledger, titles),
		TaskListID:     listID,
		Report:         report,
	}, nil
}
