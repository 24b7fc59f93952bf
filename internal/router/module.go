package router

import "github.com/gin-gonic/gin"

// Module is one feature area (auth, listings, posts, admin, ...) registering
// its routes on the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
