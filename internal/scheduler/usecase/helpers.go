package usecase

import (
	"fmt"
	"sort"
	"time"

	"task-sync-scheduler/internal/model"
	"task-sync-scheduler/internal/scheduler"
)

const dateLayout = "2006-01-02"

// buildTasks validates caller input and converts it into the per-run
// mutable accumulators. Any invalid task fails the whole run before
// anything external happens.
func buildTasks(items []scheduler.TaskItem) ([]*model.Task, error) {
	if len(items) == 0 {
		return nil, scheduler.ErrNoTasks
	}

	tasks := make([]*model.Task, 0, len(items))
	for i, item := range items {
		if item.Title == "" {
			return nil, fmt.Errorf("task %d: %w", i, scheduler.ErrEmptyTitle)
		}
		if item.RequiredTime < 0 {
			return nil, fmt.Errorf("task %d (%q): %w", i, item.Title, scheduler.ErrNegativeRequiredTime)
		}

		t := &model.Task{
			Title:        item.Title,
			RequiredTime: item.RequiredTime,
			Priority:     item.Priority,
		}
		if item.Deadline != "" {
			deadline, err := time.Parse(dateLayout, item.Deadline)
			if err != nil {
				return nil, fmt.Errorf("task %d (%q): %w", i, item.Title, scheduler.ErrInvalidDeadline)
			}
			t.Deadline = &deadline
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// resolveHorizon parses the optional horizon bounds, applying the
// configured defaults: start = today, end = start + HorizonDays.
func (uc *implUseCase) resolveHorizon(startStr, endStr string) (time.Time, time.Time, error) {
	var start time.Time
	if startStr == "" {
		start = model.DayOf(uc.now().In(uc.location))
	} else {
		parsed, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start date: %w", scheduler.ErrInvalidDate)
		}
		start = parsed
	}

	var end time.Time
	if endStr == "" {
		end = start.AddDate(0, 0, uc.cfg.HorizonDays)
	} else {
		parsed, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end date: %w", scheduler.ErrInvalidDate)
		}
		end = parsed
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, scheduler.ErrInvalidHorizon
	}

	return start, end, nil
}

// displayTitles projects task indexes to external display titles.
// Duplicate input titles get a " #k" suffix (k >= 2) so distinct tasks
// stay distinct in the ledger projection and the external task list.
func displayTitles(tasks []*model.Task) []string {
	seen := make(map[string]int, len(tasks))
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		seen[t.Title]++
		if n := seen[t.Title]; n > 1 {
			titles[i] = fmt.Sprintf("%s #%d", t.Title, n)
		} else {
			titles[i] = t.Title
		}
	}
	return titles
}

// projectLedger converts the index-keyed ledger into the caller-facing
// day -> title -> slots mapping.
func projectLedger(ledger model.Ledger, titles []string) map[string]map[string]int {
	out := make(map[string]map[string]int, len(ledger))
	for day, row := range ledger {
		dayKey := day.Format(dateLayout)
		entry := make(map[string]int, len(row))
		for idx, slots := range row {
			entry[titles[idx]] += slots
		}
		out[dayKey] = entry
	}
	return out
}

// ledgerEntries flattens the ledger into deterministic write units,
// ordered by day then task index.
func ledgerEntries(ledger model.Ledger, titles []string) []writeEntry {
	days := ledger.Days()
	sort.Slice(days, func(a, b int) bool { return days[a].Before(days[b]) })

	var entries []writeEntry
	for _, day := range days {
		row := ledger[day]
		idxs := make([]int, 0, len(row))
		for idx := range row {
			idxs = append(idxs, idx)
		}
		sort.Ints(idxs)
		for _, idx := range idxs {
			if row[idx] <= 0 {
				continue
			}
			entries = append(entries, writeEntry{
				day:   day,
				title: titles[idx],
				slots: row[idx],
			})
		}
	}
	return entries
}
