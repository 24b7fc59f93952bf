package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
	"github.com/kepl/map2-server/pkg/validation"
)

type LessonHandler struct {
	Svc    *application.LessonService
	Logger *logrus.Logger
}

func NewLessonHandler(svc *application.LessonService, logger *logrus.Logger) *LessonHandler {
	return &LessonHandler{Svc: svc, Logger: logger}
}

func (h *LessonHandler) List(c *gin.Context) {
	events, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, events, "ok", nil)
}

func (h *LessonHandler) Get(c *gin.Context) {
	e, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "ok", nil)
}

func (h *LessonHandler) Create(c *gin.Context) {
	var req application.LessonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), callerID(c), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, e, "lesson created", nil)
}

func (h *LessonHandler) Update(c *gin.Context) {
	var req application.LessonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "lesson updated", nil)
}

func (h *LessonHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), callerID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "lesson deleted", nil)
}
