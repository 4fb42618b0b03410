package http

import (
	"github.com/gin-gonic/gin"

	"task-sync-scheduler/pkg/response"
)

// CreatePlan godoc
// @Summary     Run a planning cycle
// @Description Allocates the submitted tasks into free calendar slots across the horizon and writes the resulting schedule to a new Google Tasks list.
// @Tags        Scheduler
// @Accept      json
// @Produce     json
// @Param       body body createPlanReq true "Tasks and horizon"
// @Success     200  {object} createPlanResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/scheduler/plans [POST]
func (h *handler) CreatePlan(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreatePlanReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Plan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreatePlanResp(output))
}
