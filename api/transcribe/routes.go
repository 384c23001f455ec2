package transcribe

import (
	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
)

// RegisterRoutes sets up the transcribe route
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	router.POST("/transcribe", Post(deps))
}
