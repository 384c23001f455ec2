package transcriptions

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
)

// Get returns every stored transcript, newest first
// @Summary      List all transcripts
// @Description  Returns every persisted transcript ordered by creation time, newest first.
// @Tags         transcriptions
// @Produce      json
// @Success      200 {array} models.Transcript
// @Failure      500 {object} types.ErrorResponse "Store query failed"
// @Router       /transcriptions [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.TranscriptService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Transcript service not available",
			})
			return
		}

		transcripts, err := deps.TranscriptService.ListAll(c.Request.Context())
		if err != nil {
			log.Printf("Failed to list transcripts: %v", err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list transcripts",
			})
			return
		}

		c.JSON(http.StatusOK, transcripts)
	}
}
