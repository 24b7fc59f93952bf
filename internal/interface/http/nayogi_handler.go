package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
	"github.com/kepl/map2-server/pkg/validation"
)

type NayogiHandler struct {
	Svc    *application.NayogiService
	Logger *logrus.Logger
}

func NewNayogiHandler(svc *application.NayogiService, logger *logrus.Logger) *NayogiHandler {
	return &NayogiHandler{Svc: svc, Logger: logger}
}

// List GET /api/nayogi returns only unexpired giveaways.
func (h *NayogiHandler) List(c *gin.Context) {
	events, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, events, "ok", nil)
}

func (h *NayogiHandler) Get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "ok", nil)
}

func (h *NayogiHandler) Create(c *gin.Context) {
	var req application.NayogiInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, e, "nayogi event created", nil)
}

func (h *NayogiHandler) Update(c *gin.Context) {
	var req application.NayogiInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "nayogi event updated", nil)
}

func (h *NayogiHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "nayogi event deleted", nil)
}
