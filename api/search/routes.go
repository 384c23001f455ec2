package search

import (
	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
)

// RegisterRoutes sets up the search route
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.GET("/search", Get(deps))
}
