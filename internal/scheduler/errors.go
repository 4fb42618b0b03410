package scheduler

import "errors"

// Domain-specific errors for the scheduler package.
var (
	ErrNoTasks              = errors.New("task list is empty")
	ErrEmptyTitle           = errors.New("task title is empty")
	ErrNegativeRequiredTime = errors.New("required time is negative")
	ErrInvalidDeadline      = errors.New("deadline is not a valid YYYY-MM-DD date")
	ErrInvalidDate          = errors.New("date is not a valid YYYY-MM-DD date")
	ErrInvalidHorizon       = errors.New("horizon end date is before start date")
	ErrCapacitySource       = errors.New("failed to fetch calendar capacity")
	ErrTaskListCreate       = errors.New("failed to create external task list")
	ErrAllocationInvariant  = errors.New("allocation invariant violated")
)
