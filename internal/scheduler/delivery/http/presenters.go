package http

import (
	"task-sync-scheduler/internal/scheduler"
	"task-sync-scheduler/pkg/response"
)

// --- Request DTOs ---

type taskItemReq struct {
	Title        string `json:"title"         binding:"required,min=1,max=255"`
	RequiredTime int    `json:"required_time" binding:"min=0"`
	Deadline     string `json:"deadline"      binding:"omitempty,datetime=2006-01-02"`
	Priority     string `json:"priority"      binding:"max=32"`
}

type createPlanReq struct {
	Tasks     []taskItemReq `json:"tasks"      binding:"required,min=1,dive"`
	StartDate string        `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string        `json:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	ListTitle string        `json:"list_title" binding:"max=255"`
}

func (r createPlanReq) validate() error { return nil }

func (r createPlanReq) toInput() scheduler.PlanInput {
	tasks := make([]scheduler.TaskItem, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = scheduler.TaskItem{
			Title:        t.Title,
			RequiredTime: t.RequiredTime,
			Deadline:     t.Deadline,
			Priority:     t.Priority,
		}
	}
	return scheduler.PlanInput{
		Tasks:     tasks,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		ListTitle: r.ListTitle,
	}
}

// --- Response DTOs ---

type plannedTaskResp struct {
	Title         string         `json:"title"`
	RequiredTime  int            `json:"required_time"`
	AllocatedTime int            `json:"allocated_time"`
	Deadline      *response.Date `json:"deadline,omitempty"`
	Priority      string         `json:"priority,omitempty"`
	Completed     bool           `json:"completed"`
}

func newPlannedTaskResp(task scheduler.PlannedTask) plannedTaskResp {
	resp := plannedTaskResp{
		Title:         task.Title,
		RequiredTime:  task.RequiredTime,
		AllocatedTime: task.AllocatedTime,
		Priority:      task.Priority,
		Completed:     task.Completed,
	}
	if task.Deadline != nil {
		deadline := response.Date(*task.Deadline)
		resp.Deadline = &deadline
	}
	return resp
}

type writeFailureResp struct {
	Day    string `json:"day"`
	Title  string `json:"title"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

type writeReportResp struct {
	ParentsCreated  int                `json:"parents_created"`
	SubtasksCreated int                `json:"subtasks_created"`
	Failures        []writeFailureResp `json:"failures,omitempty"`
}

type createPlanResp struct {
	RunID          string                    `json:"run_id"`
	Tasks          []plannedTaskResp         `json:"updated_tasks"`
	AllocatedSlots map[string]map[string]int `json:"allocated_slots"`
	TaskListID     string                    `json:"task_list_id"`
	Report         writeReportResp           `json:"report"`
}

func (h *handler) newCreatePlanResp(out scheduler.PlanOutput) createPlanResp {
	tasks := make([]plannedTaskResp, len(out.Tasks))
	for i, task := range out.Tasks {
		tasks[i] = newPlannedTaskResp(task)
	}
	failures := make([]writeFailureResp, len(out.Report.Failures))
	for i, f := range out.Report.Failures {
		failures[i] = writeFailureResp{
			Day:    f.Day,
			Title:  f.Title,
			Kind:   f.Kind,
			Reason: f.Reason,
		}
	}
	return createPlanResp{
		RunID:          out.RunID,
		Tasks:          tasks,
		AllocatedSlots: out.AllocatedSlots,
		TaskListID:     out.TaskListID,
		Report: writeReportResp{
			ParentsCreated:  out.Report.ParentsCreated,
			SubtasksCreated: out.Report.SubtasksCreated,
			Failures:        failures,
		},
	}
}
