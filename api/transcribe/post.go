package transcribe

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/htx-labs/transcriber-api/api/types"
	"github.com/htx-labs/transcriber-api/internal/services/ingest"
)

// Post handles audio upload and transcription requests
// @Summary      Transcribe uploaded audio files
// @Description  Accepts one or more audio files, assigns each a versioned identity, transcribes it, and persists the transcript.
// @Description  Files are processed independently: the response always carries one result per uploaded file, in upload order,
// @Description  and a failed file never aborts its siblings. The request as a whole returns 200 even for mixed outcomes.
// @Tags         transcribe
// @Accept       multipart/form-data
// @Produce      json
// @Param        files formData file true "Audio files (audio/mpeg, audio/wav, audio/x-wav, audio/ogg, audio/x-m4a, audio/aac, audio/flac)"
// @Success      200 {array} ingest.FileResult "Per-file results"
// @Failure      400 {object} types.ErrorResponse "Malformed multipart request or no files"
// @Failure      500 {object} types.ErrorResponse "Ingestion service not available"
// @Router       /transcribe [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.IngestService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Ingestion service not available",
			})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid multipart request",
				Details: err.Error(),
			})
			return
		}

		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "No files provided; use the 'files' form field",
			})
			return
		}

		batch := make([]ingest.Upload, 0, len(files))
		for _, header := range files {
			batch = append(batch, toUpload(header))
		}

		results := deps.IngestService.IngestBatch(c.Request.Context(), batch)
		c.JSON(http.StatusOK, results)
	}
}

// toUpload adapts a multipart file header to the pipeline's upload type
func toUpload(header *multipart.FileHeader) ingest.Upload {
	return ingest.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}
