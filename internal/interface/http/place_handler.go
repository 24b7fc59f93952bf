package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/pkg/response"
	"github.com/kepl/map2-server/pkg/validation"
)

// PlaceHandler serves one curated layer; the same handler type is mounted
// twice, once per kind.
type PlaceHandler struct {
	Svc    *application.PlaceService
	Kind   entity.PlaceKind
	Logger *logrus.Logger
}

func NewPlaceHandler(svc *application.PlaceService, kind entity.PlaceKind, logger *logrus.Logger) *PlaceHandler {
	return &PlaceHandler{Svc: svc, Kind: kind, Logger: logger}
}

func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.Svc.List(c.Request.Context(), h.Kind)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, places, "ok", nil)
}

func (h *PlaceHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), h.Kind, c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "ok", nil)
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var req application.PlaceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), callerID(c), h.Kind, req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "place created", nil)
}

func (h *PlaceHandler) Update(c *gin.Context) {
	var req application.PlaceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), callerID(c), h.Kind, c.Param("id"), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "place updated", nil)
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), callerID(c), h.Kind, c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "place deleted", nil)
}
