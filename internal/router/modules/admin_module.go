package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/container"
	"github.com/kepl/map2-server/internal/domain/repository"
	handlers "github.com/kepl/map2-server/internal/interface/http"
	"github.com/kepl/map2-server/internal/interface/middleware"
	"github.com/kepl/map2-server/pkg/helpers"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, users repository.UserRepository, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, Users: users, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	admin.Use(middleware.RequireAdmin(m.Users))
	{
		admin.GET("/stats", m.Handler.Stats)
		admin.GET("/posts", m.Handler.Posts)
		admin.GET("/users", m.Handler.Users)
		admin.PUT("/users/:id", m.Handler.UpdateUser)
		admin.POST("/upgrade", m.Handler.Upgrade)
	}
}
