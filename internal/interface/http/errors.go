package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kepl/map2-server/internal/application"
	"github.com/kepl/map2-server/pkg/response"
)

// respondError maps application sentinel errors onto HTTP statuses. Anything
// unrecognized is logged and reported as a 500 without leaking the cause.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "authentication required", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, "permission denied", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrConflict):
		response.Error(c, http.StatusBadRequest, "already exists", nil)
	case errors.Is(err, application.ErrExpired):
		response.Error(c, http.StatusBadRequest, "listing expired", nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}

// callerID returns the authenticated user id set by the auth middleware.
func callerID(c *gin.Context) string {
	return c.GetString("userID")
}
