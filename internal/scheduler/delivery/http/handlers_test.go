package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-sync-scheduler/internal/scheduler"
	"task-sync-scheduler/pkg/response"
)

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

type mockUseCase struct {
	gotInput scheduler.PlanInput
	output   scheduler.PlanOutput
	err      error
}

func (m *mockUseCase) Plan(ctx context.Context, input scheduler.PlanInput) (scheduler.PlanOutput, error) {
	m.gotInput = input
	return m.output, m.err
}

func performPlan(t *testing.T, uc *mockUseCase, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := New(&mockLogger{}, uc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/scheduler/plans", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreatePlan(c)
	return w
}

func TestCreatePlan(t *testing.T) {
	deadline := time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{
		output: scheduler.PlanOutput{
			RunID:      "run-1",
			TaskListID: "list-1",
			Tasks: []scheduler.PlannedTask{
				{Title: "Task A", RequiredTime: 3, AllocatedTime: 3, Deadline: &deadline, Completed: true},
			},
			AllocatedSlots: map[string]map[string]int{
				"2025-01-26": {"Task A": 3},
			},
			Report: scheduler.WriteReport{ParentsCreated: 1, SubtasksCreated: 3},
		},
	}

	w := performPlan(t, uc, gin.H{
		"tasks": []gin.H{
			{"title": "Task A", "required_time": 3, "deadline": "2025-01-27"},
		},
		"start_date": "2025-01-26",
		"end_date":   "2025-01-27",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if len(uc.gotInput.Tasks) != 1 || uc.gotInput.Tasks[0].Title != "Task A" {
		t.Errorf("use case received wrong input: %+v", uc.gotInput)
	}
	if uc.gotInput.StartDate != "2025-01-26" || uc.gotInput.EndDate != "2025-01-27" {
		t.Errorf("horizon not forwarded: %+v", uc.gotInput)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %v", resp.Data)
	}
	if data["run_id"] != "run-1" || data["task_list_id"] != "list-1" {
		t.Errorf("unexpected plan response: %v", data)
	}

	// The deadline renders as a plain date, not an RFC3339 timestamp.
	tasks, ok := data["updated_tasks"].([]interface{})
	if !ok || len(tasks) != 1 {
		t.Fatalf("unexpected updated_tasks payload: %v", data["updated_tasks"])
	}
	rendered, _ := tasks[0].(map[string]interface{})["deadline"].(string)
	if len(rendered) != 10 || strings.Count(rendered, "-") != 2 {
		t.Errorf("expected YYYY-MM-DD deadline, got %q", rendered)
	}
}

func TestCreatePlanBindingErrors(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"missing tasks", gin.H{}},
		{"empty tasks", gin.H{"tasks": []gin.H{}}},
		{"missing title", gin.H{"tasks": []gin.H{{"required_time": 1}}}},
		{"malformed deadline", gin.H{"tasks": []gin.H{{"title": "a", "deadline": "soon"}}}},
		{"negative required time", gin.H{"tasks": []gin.H{{"title": "a", "required_time": -1}}}},
		{"malformed start date", gin.H{
			"tasks":      []gin.H{{"title": "a", "required_time": 1}},
			"start_date": "yesterday",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := performPlan(t, uc, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if len(uc.gotInput.Tasks) != 0 {
				t.Errorf("use case must not run on binding failure")
			}
		})
	}
}

func TestCreatePlanErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"invalid horizon", scheduler.ErrInvalidHorizon, http.StatusBadRequest},
		{"wrapped deadline error", fmt.Errorf("task 0: %w", scheduler.ErrInvalidDeadline), http.StatusBadRequest},
		{"wrapped horizon date error", fmt.Errorf("start date: %w", scheduler.ErrInvalidDate), http.StatusBadRequest},
		{"capacity source failure", fmt.Errorf("%w: boom", scheduler.ErrCapacitySource), http.StatusInternalServerError},
		{"task list failure", scheduler.ErrTaskListCreate, http.StatusInternalServerError},
		{"unknown failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w := performPlan(t, uc, gin.H{
				"tasks": []gin.H{{"title": "a", "required_time": 1}},
			})

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}
