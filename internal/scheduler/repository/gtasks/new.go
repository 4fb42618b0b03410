package gtasks

import (
	"context"

	"task-sync-scheduler/internal/scheduler/repository"
	"task-sync-scheduler/pkg/gtasks"
	pkgLog "task-sync-scheduler/pkg/log"
)

// Writer is the slice of the Tasks client this sink needs, abstracted
// for substitution in tests.
type Writer interface {
	CreateTaskList(ctx context.Context, title string) (*gtasks.TaskList, error)
	CreateTask(ctx context.Context, req gtasks.CreateTaskRequest) (*gtasks.Task, error)
}

type implTaskSink struct {
	client Writer
	l      pkgLog.Logger
}

// New creates a TaskSink backed by Google Tasks.
func New(client Writer, l pkgLog.Logger) repository.TaskSink {
	return &implTaskSink{
		client: client,
		l:      l,
	}
}
