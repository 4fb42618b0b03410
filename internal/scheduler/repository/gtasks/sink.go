package gtasks

import (
	"context"

	"task-sync-scheduler/internal/scheduler/repository"
	"task-sync-scheduler/pkg/gtasks"
)

// CreateTaskList creates a fresh Google Tasks list and returns its ID.
func (s *implTaskSink) CreateTaskList(ctx context.Context, title string) (string, error) {
	list, err := s.client.CreateTaskList(ctx, title)
	if err != nil {
		return "", err
	}
	s.l.Infof(ctx, "gtasks: created task list %q id=%s", list.Title, list.ID)
	return list.ID, nil
}

// CreateTask creates one to-do item and returns its ID.
func (s *implTaskSink) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (string, error) {
	created, err := s.client.CreateTask(ctx, gtasks.CreateTaskRequest{
		ListID:   opt.ListID,
		Title:    opt.Title,
		Notes:    opt.Notes,
		Due:      opt.Due,
		ParentID: opt.ParentID,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}
