package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/container"
	handlers "github.com/kepl/map2-server/internal/interface/http"
	"github.com/kepl/map2-server/internal/interface/middleware"
	"github.com/kepl/map2-server/pkg/helpers"
)

// ListingModule mounts the four user listing kinds: busking, community,
// lessons and nayogi. Reads are public; writes require auth.
type ListingModule struct {
	Busking   *handlers.BuskingHandler
	Community *handlers.CommunityHandler
	Lesson    *handlers.LessonHandler
	Nayogi    *handlers.NayogiHandler
	JWT       *helpers.JWTManager
}

func NewListingModule(busking *handlers.BuskingHandler, community *handlers.CommunityHandler, lesson *handlers.LessonHandler, nayogi *handlers.NayogiHandler, jwt *helpers.JWTManager) *ListingModule {
	return &ListingModule{Busking: busking, Community: community, Lesson: lesson, Nayogi: nayogi, JWT: jwt}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/busking", m.Busking.List)
	rg.GET("/busking/:id", m.Busking.Get)
	rg.GET("/community", m.Community.List)
	rg.GET("/community/:id", m.Community.Get)
	rg.GET("/lessons", m.Lesson.List)
	rg.GET("/lessons/:id", m.Lesson.Get)
	rg.GET("/nayogi", m.Nayogi.List)
	rg.GET("/nayogi/:id", m.Nayogi.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.POST("/busking", m.Busking.Create)
		auth.PUT("/busking/:id", m.Busking.Update)
		auth.DELETE("/busking/:id", m.Busking.Delete)

		auth.POST("/community", m.Community.Create)
		auth.PUT("/community/:id", m.Community.Update)
		auth.DELETE("/community/:id", m.Community.Delete)

		auth.POST("/lessons", m.Lesson.Create)
		auth.PUT("/lessons/:id", m.Lesson.Update)
		auth.DELETE("/lessons/:id", m.Lesson.Delete)

		auth.POST("/nayogi", m.Nayogi.Create)
		auth.PUT("/nayogi/:id", m.Nayogi.Update)
		auth.DELETE("/nayogi/:id", m.Nayogi.Delete)
	}
}
