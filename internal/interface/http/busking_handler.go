package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
	"github.com/kepl/map2-server/pkg/validation"
)

type BuskingHandler struct {
	Svc    *application.BuskingService
	Logger *logrus.Logger
}

func NewBuskingHandler(svc *application.BuskingService, logger *logrus.Logger) *BuskingHandler {
	return &BuskingHandler{Svc: svc, Logger: logger}
}

// List GET /api/busking returns upcoming performances, soonest first.
func (h *BuskingHandler) List(c *gin.Context) {
	events, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, events, "ok", nil)
}

// Get GET /api/busking/:id
func (h *BuskingHandler) Get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "ok", nil)
}

// Create POST /api/busking (busker or admin only)
func (h *BuskingHandler) Create(c *gin.Context) {
	var req application.BuskingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, e, "busking event created", nil)
}

// Update PUT /api/busking/:id
func (h *BuskingHandler) Update(c *gin.Context) {
	var req application.BuskingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "busking event updated", nil)
}

// Delete DELETE /api/busking/:id
func (h *BuskingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "busking event deleted", nil)
}
