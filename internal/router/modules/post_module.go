package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/container"
	handlers "github.com/kepl/map2-server/internal/interface/http"
	"github.com/kepl/map2-server/internal/interface/middleware"
	"github.com/kepl/map2-server/pkg/helpers"
)

type PostModule struct {
	Handler *handlers.PostHandler
	JWT     *helpers.JWTManager
}

func NewPostModule(h *handlers.PostHandler, jwt *helpers.JWTManager) *PostModule {
	return &PostModule{Handler: h, JWT: jwt}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/search", m.Handler.Search)
	rg.GET("/posts/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/posts", m.Handler.Create)
		auth.PUT("/posts/:id", m.Handler.Update)
		auth.DELETE("/posts/:id", m.Handler.Delete)
	}
}
