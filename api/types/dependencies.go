package types

import (
	"github.com/htx-labs/transcriber-api/internal/database"
	"github.com/htx-labs/transcriber-api/internal/services/engine"
	"github.com/htx-labs/transcriber-api/internal/services/ingest"
	"github.com/htx-labs/transcriber-api/internal/services/transcripts"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	IngestService     *ingest.Service
	TranscriptService transcripts.Service
	Transcriber       engine.Transcriber
}
