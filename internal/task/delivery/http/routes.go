package http

import (
	"github.com/gin-gonic/gin"

	"deadline-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes require Auth; outbound notification routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/upcoming", h.Upcoming)
		tasks.GET("/past", h.Past)
		tasks.GET("/prioritized", h.Prioritized)
		tasks.GET("/analytics", h.Analytics)
		tasks.POST("/google/tokens", h.UpsertGoogleToken)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/notify", mw.RateLimit(), h.SendReminder)
		tasks.POST("/:id/calendar", mw.RateLimit(), h.SyncCalendar)
	}
}
