package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-sync-scheduler/internal/scheduler"
	"task-sync-scheduler/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Caller
// mistakes map to 400; upstream Google API failures map to 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduler.ErrNoTasks),
		errors.Is(err, scheduler.ErrEmptyTitle),
		errors.Is(err, scheduler.ErrNegativeRequiredTime),
		errors.Is(err, scheduler.ErrInvalidDeadline),
		errors.Is(err, scheduler.ErrInvalidDate),
		errors.Is(err, scheduler.ErrInvalidHorizon):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
