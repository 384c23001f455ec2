package ingest

import (
	"io"

	"github.com/htx-labs/transcriber-api/internal/models"
)

// Status values for per-file results
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AllowedAudioTypes is the exact set of accepted upload media types
var AllowedAudioTypes = []string{
	"audio/mpeg",  // .mp3
	"audio/wav",   // .wav
	"audio/x-wav", // .wav alternative
	"audio/ogg",   // .ogg
	"audio/x-m4a", // .m4a
	"audio/aac",   // .aac
	"audio/flac",  // .flac
}

// Upload is one audio payload handed to the pipeline. Open returns a fresh
// handle to the payload bytes; the pipeline closes every handle it opens.
type Upload struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// FileResult is the per-file outcome of an ingestion
type FileResult struct {
	Filename      string             `json:"filename"`
	Status        string             `json:"status"`
	Transcription *models.Transcript `json:"transcription,omitempty"`
	Message       string             `json:"message,omitempty"`
}
