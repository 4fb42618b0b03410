package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"task-sync-scheduler/internal/scheduler"
	"task-sync-scheduler/internal/scheduler/repository"
)

// writeEntry is one independent unit of external work: a parent to-do
// plus its per-slot subtasks.
type writeEntry struct {
	day   time.Time
	title string
	slots int
}

// entryResult is the outcome of materializing one writeEntry. Each
// worker writes only to its own slot of the results slice, so results
// merge without interleaving.
type entryResult struct {
	parentCreated   bool
	subtasksCreated int
	failures        []scheduler.WriteFailure
}

// writeLedger materializes the ledger in the external task tracker.
// Parents are independent and written by a bounded worker pool; the
// children of a parent are only attempted after the parent exists.
// Per-item failures are recorded, never fatal.
func (uc *implUseCase) writeLedger(ctx context.Context, listID string, entries []writeEntry) scheduler.WriteReport {
	results := make([]entryResult, len(entries))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := uc.cfg.WriteWorkers
	if workers > len(entries) {
		workers = len(entries)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = uc.writeEntry(ctx, listID, entries[idx])
			}
		}()
	}

	for idx := range entries {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	var report scheduler.WriteReport
	for _, r := range results {
		if r.parentCreated {
			report.ParentsCreated++
		}
		report.SubtasksCreated += r.subtasksCreated
		report.Failures = append(report.Failures, r.failures...)
	}
	return report
}

// writeEntry creates one parent to-do and its per-slot subtasks.
func (uc *implUseCase) writeEntry(ctx context.Context, listID string, entry writeEntry) entryResult {
	var result entryResult

	dayStr := entry.day.Format(dateLayout)
	due := time.Date(entry.day.Year(), entry.day.Month(), entry.day.Day(),
		uc.cfg.DueHour, 0, 0, 0, uc.location)

	parentTitle := fmt.Sprintf("%s (Allocated %d slots)", entry.title, entry.slots)
	parentNotes := fmt.Sprintf("Allocated %d slots on %s", entry.slots, dayStr)

	if err := uc.limiter.Wait(ctx); err != nil {
		result.failures = append(result.failures, scheduler.WriteFailure{
			Day: dayStr, Title: parentTitle, Kind: "parent", Reason: err.Error(),
		})
		return result
	}

	parentID, err := uc.sink.CreateTask(ctx, repository.CreateTaskOptions{
		ListID: listID,
		Title:  parentTitle,
		Notes:  parentNotes,
		Due:    due,
	})
	if err != nil {
		uc.l.Errorf(ctx, "sync: failed to create parent task %q on %s: %v", parentTitle, dayStr, err)
		result.failures = append(result.failures, scheduler.WriteFailure{
			Day: dayStr, Title: parentTitle, Kind: "parent", Reason: err.Error(),
		})
		return result
	}
	result.parentCreated = true
	uc.l.Infof(ctx, "sync: created parent task %q due %s", parentTitle, due.Format(time.RFC3339))

	for slot := 1; slot <= entry.slots; slot++ {
		subtaskTitle := fmt.Sprintf("%s - 1h", entry.title)
		subtaskNotes := fmt.Sprintf("Slot %d of %d allocated on %s", slot, entry.slots, dayStr)

		if err := uc.limiter.Wait(ctx); err != nil {
			result.failures = append(result.failures, scheduler.WriteFailure{
				Day: dayStr, Title: subtaskTitle, Kind: "subtask", Reason: err.Error(),
			})
			return result
		}

		if _, err := uc.sink.CreateTask(ctx, repository.CreateTaskOptions{
			ListID:   listID,
			Title:    subtaskTitle,
			Notes:    subtaskNotes,
			Due:      due,
			ParentID: parentID,
		}); err != nil {
			uc.l.Errorf(ctx, "sync: failed to create subtask %q on %s: %v", subtaskTitle, dayStr, err)
			result.failures = append(result.failures, scheduler.WriteFailure{
				Day: dayStr, Title: subtaskTitle, Kind: "subtask", Reason: err.Error(),
			})
			continue
		}
		result.subtasksCreated++
	}

	return result
}
