package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
	"github.com/kepl/map2-server/pkg/validation"
)

type BusinessHandler struct {
	Svc    *application.BusinessService
	Logger *logrus.Logger
}

func NewBusinessHandler(svc *application.BusinessService, logger *logrus.Logger) *BusinessHandler {
	return &BusinessHandler{Svc: svc, Logger: logger}
}

func (h *BusinessHandler) List(c *gin.Context) {
	businesses, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, businesses, "ok", nil)
}

// Get GET /api/businesses/:id includes the business's realtime events.
func (h *BusinessHandler) Get(c *gin.Context) {
	b, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, b, "ok", nil)
}

func (h *BusinessHandler) Create(c *gin.Context) {
	var req application.BusinessInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, b, "business created", nil)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	var req application.BusinessInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.Update(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, b, "business updated", nil)
}

// Delete removes the business and its realtime events.
func (h *BusinessHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "business deleted", nil)
}
