package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kepl/map2-server/pkg/helpers"
	"github.com/kepl/map2-server/pkg/response"
)

// Auth validates the access token cookie and checks the token's session id
// against the live Redis session, so a logout kills outstanding tokens.
// It sets userID (and name/email for convenience) in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		if rdb != nil {
			key := "user:session:" + claims.UserID
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 {
				response.Error(c, http.StatusUnauthorized, "session not found", nil)
				return
			}
			if data["sid"] != claims.SessionID {
				response.Error(c, http.StatusUnauthorized, "session superseded", nil)
				return
			}
			c.Set("userName", data["name"])
			c.Set("userEmail", data["email"])
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}
