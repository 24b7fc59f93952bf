package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/pkg/helpers"
)

// Redis is nil in these tests, which skips the session check and exercises
// the pure token path.
func newAuthRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(nil, jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("userID"))
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	r := newAuthRouter(jwt)

	t.Run("no cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "garbage"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, _, err := jwt.GenerateRefreshToken("user-1", "sess-1")
		if err != nil {
			t.Fatalf("GenerateRefreshToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: refresh})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token sets the caller id", func(t *testing.T) {
		access, _, err := jwt.GenerateAccessToken("user-1", "sess-1")
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: access})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if w.Body.String() != "user-1" {
			t.Errorf("userID = %q, want user-1", w.Body.String())
		}
	})
}
