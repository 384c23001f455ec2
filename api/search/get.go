package search

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
)

// Get searches transcripts by filename substring
// @Summary      Search transcripts by filename
// @Description  Case-insensitive substring match against stored audio file names.
// @Description  Results are ordered by file name descending so newer versions of the same base name come first.
// @Tags         search
// @Produce      json
// @Param        query query string true "Substring to match against audio file names"
// @Success      200 {array} models.Transcript
// @Failure      400 {object} types.ErrorResponse "Missing query parameter"
// @Failure      500 {object} types.ErrorResponse "Store query failed"
// @Router       /search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.TranscriptService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Transcript service not available",
			})
			return
		}

		query, ok := c.GetQuery("query")
		if !ok || query == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Query parameter 'query' is required",
			})
			return
		}

		transcripts, err := deps.TranscriptService.Search(c.Request.Context(), query)
		if err != nil {
			log.Printf("Failed to search transcripts for %q: %v", query, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to search transcripts",
			})
			return
		}

		c.JSON(http.StatusOK, transcripts)
	}
}
