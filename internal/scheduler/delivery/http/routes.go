package http

import (
	"github.com/gin-gonic/gin"

	"task-sync-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plans := rg.Group("/plans")
	{
		plans.POST("", mw.RequestID(), h.CreatePlan)
	}
}
