package engine

import "context"

// Transcriber converts audio stored at a path into text. Implementations
// own their warm-up and client lifecycle; the ingestion pipeline only sees
// this boundary.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)

	// Provider returns a short name identifying the backing engine
	Provider() string
}
