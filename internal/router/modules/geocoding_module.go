package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kepl/map2-server/internal/container"
	handlers "github.com/kepl/map2-server/internal/interface/http"
	"github.com/kepl/map2-server/internal/interface/middleware"
	"github.com/kepl/map2-server/pkg/helpers"
)

// GeocodingModule mounts the address lookup proxy and the image upload
// endpoint. Lookups are rate limited per IP since they hit a paid API.
type GeocodingModule struct {
	Geocoding *handlers.GeocodingHandler
	Uploads   *handlers.UploadHandler
	JWT       *helpers.JWTManager
}

func NewGeocodingModule(geocoding *handlers.GeocodingHandler, uploads *handlers.UploadHandler, jwt *helpers.JWTManager) *GeocodingModule {
	return &GeocodingModule{Geocoding: geocoding, Uploads: uploads, JWT: jwt}
}

func (m *GeocodingModule) Register(rg *gin.RouterGroup) {
	lookupLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/geocoding", lookupLimiter, m.Geocoding.Lookup)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/uploads/image", m.Uploads.Image)
	}
}
