package http

import (
	"github.com/gin-gonic/gin"
)

// processCreatePlanReq binds and validates the plan request body.
func (h *handler) processCreatePlanReq(c *gin.Context) (createPlanReq, error) {
	var req createPlanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
