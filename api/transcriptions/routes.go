package transcriptions

import (
	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
)

// RegisterRoutes sets up the transcriptions routes
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.GET("/transcriptions", Get(deps))
}
