package http

import (
	"github.com/gin-gonic/gin"

	"deadline-sync/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a pending task for the caller. Priority defaults to medium.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller user id"
// @Param       body      body   createReq true "Task data"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newDetailResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks ordered by deadline, with derived urgency.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller user id"
// @Param       status    query  string false "Filter by status (pending/in_progress/completed/missed)"
// @Param       priority  query  string false "Filter by priority (low/medium/high/critical)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Upcoming godoc
// @Summary     Upcoming tasks
// @Description Returns tasks due within the next N days (default 30, max 365).
// @Tags        Tasks
// @Produce     json
// @Param       days query int false "Window in days"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpcomingReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Upcoming(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Upcoming: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Past godoc
// @Summary     Past tasks
// @Description Returns tasks whose deadline has passed, most recent first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/past [GET]
func (h *handler) Past(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Past(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Past: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Prioritized godoc
// @Summary     Prioritized tasks
// @Description Ranks active tasks by urgency score and recommends the next one.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} prioritizedResp
// @Router      /api/v1/tasks/prioritized [GET]
func (h *handler) Prioritized(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Prioritized(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Prioritized: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPrioritizedResp(output))
}

// Analytics godoc
// @Summary     Task analytics
// @Description Returns completion and deadline statistics for the caller.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} analyticsResp
// @Router      /api/v1/tasks/analytics [GET]
func (h *handler) Analytics(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analytics(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analytics: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyticsResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task with its urgency score.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task. Closing it stamps completed_at.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// UpsertGoogleToken godoc
// @Summary     Store Google token
// @Description Stores the OAuth token used for Gmail reminders and Calendar sync.
// @Tags        Google
// @Accept      json
// @Produce     json
// @Param       body body googleTokenReq true "OAuth token"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/google/tokens [POST]
func (h *handler) UpsertGoogleToken(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processGoogleTokenReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.UpsertGoogleToken(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpsertGoogleToken: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SendReminder godoc
// @Summary     Send deadline reminder
// @Description Sends a reminder for the task through the configured channel.
// @Tags        Google
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} notifyResp
// @Failure     400 {object} response.Resp "Channel not linked"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/tasks/{id}/notify [POST]
func (h *handler) SendReminder(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendReminder(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.SendReminder: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newNotifyResp(output))
}

// SyncCalendar godoc
// @Summary     Sync calendar event
// @Description Creates or updates the Google Calendar event of the task.
// @Tags        Google
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Google not linked"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/tasks/{id}/calendar [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SyncCalendar(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCalendarResp(output))
}
