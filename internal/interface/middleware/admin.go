package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/domain/entity"
	"github.com/kepl/map2-server/internal/domain/repository"
	"github.com/kepl/map2-server/pkg/response"
)

// RequireAdmin looks the caller up and rejects non-admin roles. It must run
// after Auth. Role comes from the database, not the token, so a demotion
// takes effect on the next request.
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("userID")
		if uid == "" {
			response.Error(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		u, err := users.GetByID(c.Request.Context(), uid)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		if u.Role != entity.RoleAdmin {
			response.Error(c, http.StatusForbidden, "admin only", nil)
			return
		}
		c.Next()
	}
}
