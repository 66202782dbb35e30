package attempts

import (
	"github.com/gin-gonic/gin"
	"github.com/lexivox/speech-api/api/types"
)

// RegisterRoutes registers attempt routes. Uploads and reads carry
// separate rate limits.
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies, uploadMiddleware, readMiddleware gin.HandlerFunc) {
	group.POST("", uploadMiddleware, Post(deps))
	group.GET("", readMiddleware, List(deps))
	group.GET("/:id", readMiddleware, GetByID(deps))
}
