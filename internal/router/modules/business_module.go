package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/container"
	handlers "github.com/kepl/map2-server/internal/interface/http"
	"github.com/kepl/map2-server/internal/interface/middleware"
	"github.com/kepl/map2-server/pkg/helpers"
)

// BusinessModule mounts storefronts and their realtime promotions.
type BusinessModule struct {
	Business *handlers.BusinessHandler
	Realtime *handlers.RealtimeHandler
	JWT      *helpers.JWTManager
}

func NewBusinessModule(business *handlers.BusinessHandler, realtime *handlers.RealtimeHandler, jwt *helpers.JWTManager) *BusinessModule {
	return &BusinessModule{Business: business, Realtime: realtime, JWT: jwt}
}

func (m *BusinessModule) Register(rg *gin.RouterGroup) {
	rg.GET("/businesses", m.Business.List)
	rg.GET("/businesses/:id", m.Business.Get)
	rg.GET("/events", m.Realtime.List)
	rg.GET("/events/:id", m.Realtime.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/businesses", m.Business.Create)
		auth.PUT("/businesses/:id", m.Business.Update)
		auth.DELETE("/businesses/:id", m.Business.Delete)

		auth.POST("/events", m.Realtime.Create)
		auth.PUT("/events/:id", m.Realtime.Update)
		auth.DELETE("/events/:id", m.Realtime.Delete)
	}
}
