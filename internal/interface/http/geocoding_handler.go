package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
)

type GeocodingHandler struct {
	Svc    *application.GeocodingService
	Logger *logrus.Logger
}

func NewGeocodingHandler(svc *application.GeocodingService, logger *logrus.Logger) *GeocodingHandler {
	return &GeocodingHandler{Svc: svc, Logger: logger}
}

// Lookup GET /api/geocoding?query=
func (h *GeocodingHandler) Lookup(c *gin.Context) {
	res, err := h.Svc.Lookup(c.Request.Context(), c.Query("query"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "ok", nil)
}
