package http

import (
	"github.com/gin-gonic/gin"

	"deadline-sync/internal/task"
	"deadline-sync/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Upcoming(c *gin.Context)
	Past(c *gin.Context)
	Prioritized(c *gin.Context)
	Analytics(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	UpsertGoogleToken(c *gin.Context)
	SendReminder(c *gin.Context)
	SyncCalendar(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	registerValidators(l)
	return &handler{
		l:  l,
		uc: uc,
	}
}
