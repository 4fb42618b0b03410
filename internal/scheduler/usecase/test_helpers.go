package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"task-sync-scheduler/internal/scheduler/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeCapacitySource serves a fixed booked-hours map or a fixed error.
type fakeCapacitySource struct {
	hours map[time.Time]float64
	err   error
}

func (f *fakeCapacitySource) DailyBookedHours(ctx context.Context, start, end time.Time) (map[time.Time]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hours, nil
}

// fakeTaskSink records writes in memory. failTitles makes CreateTask
// fail for exact title matches; failList makes list creation fail.
type fakeTaskSink struct {
	mu         sync.Mutex
	nextID     int
	listTitle  string
	created    []repository.CreateTaskOptions
	failTitles map[string]bool
	failList   bool
	listErr    error
	taskErr    error
}

func (f *fakeTaskSink) CreateTaskList(ctx context.Context, title string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return "", f.listErr
	}
	f.listTitle = title
	return "list-1", nil
}

func (f *fakeTaskSink) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTitles[opt.Title] {
		return "", f.taskErr
	}
	f.nextID++
	f.created = append(f.created, opt)
	return fmt.Sprintf("task-%d", f.nextID), nil
}

func (f *fakeTaskSink) parents() []repository.CreateTaskOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.CreateTaskOptions
	for _, c := range f.created {
		if c.ParentID == "" {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeTaskSink) subtasks() []repository.CreateTaskOptions {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []repository.CreateTaskOptions
	for _, c := range f.created {
		if c.ParentID != "" {
			out = append(out, c)
		}
	}
	return out
}

func mustDay(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
