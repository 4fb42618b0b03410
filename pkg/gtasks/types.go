package gtasks

import "time"

// TaskList is a simplified representation of a Google Tasks task list.
type TaskList struct {
	ID    string
	Title string
}

// Task is a simplified representation of a Google Tasks to-do item.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Due    time.Time
	Parent string
}

// CreateTaskRequest is the input for creating a to-do item. When
// ParentID is set the created item is moved under that parent after
// insertion, matching the Tasks API's insert-then-move semantics.
type CreateTaskRequest struct {
	ListID   string
	Title    string
	Notes    string
	Due      time.Time
	ParentID string
}
