package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
)

// Get handles health check requests
// @Summary      Check service health
// @Description  Reports whether the transcript store is reachable. Health reflects store connectivity only; the transcription engine is not probed.
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "Store reachable"
// @Failure      503 {object} types.HealthErrorResponse "Store unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.DB == nil {
			c.JSON(http.StatusServiceUnavailable, types.HealthErrorResponse{
				Status: "ERROR",
				Error:  "database not configured",
			})
			return
		}

		if err := deps.DB.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, types.HealthErrorResponse{
				Status: "ERROR",
				Error:  err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.HealthResponse{Status: "OK"})
	}
}
