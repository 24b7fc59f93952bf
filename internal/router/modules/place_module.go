package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/container"
	"github.com/kepl/map2-server/internal/domain/repository"
	handlers "github.com/kepl/map2-server/internal/interface/http"
	"github.com/kepl/map2-server/internal/interface/middleware"
	"github.com/kepl/map2-server/pkg/helpers"
)

// PlaceModule mounts the curated garden and hotspot layers. Writes sit
// behind the admin guard on top of auth.
type PlaceModule struct {
	Gardens  *handlers.PlaceHandler
	Hotspots *handlers.PlaceHandler
	Users    repository.UserRepository
	JWT      *helpers.JWTManager
}

func NewPlaceModule(gardens, hotspots *handlers.PlaceHandler, users repository.UserRepository, jwt *helpers.JWTManager) *PlaceModule {
	return &PlaceModule{Gardens: gardens, Hotspots: hotspots, Users: users, JWT: jwt}
}

func (m *PlaceModule) Register(rg *gin.RouterGroup) {
	rg.GET("/gardens", m.Gardens.List)
	rg.GET("/gardens/:id", m.Gardens.Get)
	rg.GET("/hotspots", m.Hotspots.List)
	rg.GET("/hotspots/:id", m.Hotspots.Get)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	admin.Use(middleware.RequireAdmin(m.Users))
	{
		admin.POST("/gardens", m.Gardens.Create)
		admin.PUT("/gardens/:id", m.Gardens.Update)
		admin.DELETE("/gardens/:id", m.Gardens.Delete)

		admin.POST("/hotspots", m.Hotspots.Create)
		admin.PUT("/hotspots/:id", m.Hotspots.Update)
		admin.DELETE("/hotspots/:id", m.Hotspots.Delete)
	}
}
