package http

import (
	"github.com/gin-gonic/gin"

	"deadline-sync/internal/model"
	pkgErrors "deadline-sync/pkg/errors"
	"deadline-sync/pkg/scope"
)

// processScope returns the caller set by the Auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processIDReq returns the scope and the :id URI param.
func (h *handler) processIDReq(c *gin.Context) (model.Scope, string, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return sc, "", err
	}
	id := c.Param("id")
	if id == "" {
		return sc, "", pkgErrors.NewHTTPError(400, "id is required")
	}
	return sc, id, nil
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (model.Scope, createReq, error) {
	var req createReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task/delivery/http.processCreateReq: %v", err)
		return sc, req, errWrongBody
	}
	return sc, req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (model.Scope, listReq, error) {
	var req listReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task/delivery/http.processListReq: %v", err)
		return sc, req, pkgErrors.ErrBadRequest
	}
	return sc, req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (model.Scope, updateReq, error) {
	var req updateReq
	sc, id, err := h.processIDReq(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task/delivery/http.processUpdateReq: %v", err)
		return sc, req, errWrongBody
	}
	req.ID = id
	return sc, req, nil
}

// processUpcomingReq binds the days query parameter.
func (h *handler) processUpcomingReq(c *gin.Context) (model.Scope, upcomingReq, error) {
	var req upcomingReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task/delivery/http.processUpcomingReq: %v", err)
		return sc, req, pkgErrors.NewHTTPError(400, "days must be between 1 and 365")
	}
	return sc, req, nil
}

// processGoogleTokenReq binds and validates the Google token body.
func (h *handler) processGoogleTokenReq(c *gin.Context) (model.Scope, googleTokenReq, error) {
	var req googleTokenReq
	sc, err := h.processScope(c)
	if err != nil {
		return sc, req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task/delivery/http.processGoogleTokenReq: %v", err)
		return sc, req, errWrongBody
	}
	return sc, req, nil
}
