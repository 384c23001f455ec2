package engine

import (
	"fmt"
	"os"

	"github.com/htx-labs/transcriber-api/pkg/config"
)

// NewFromConfig constructs the configured Transcriber. Construction happens
// once at startup; the instance is injected into the ingestion pipeline and
// reused for its lifetime.
func NewFromConfig(cfg *config.Config) (Transcriber, error) {
	switch cfg.Transcription.Provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		return NewOpenAITranscriber(apiKey, cfg.Transcription.Language), nil

	case "whisper_cpp":
		return NewWhisperCppTranscriber(
			cfg.Transcription.WhisperPath,
			cfg.Transcription.ModelPath,
			cfg.Transcription.Language,
		)

	default:
		return nil, fmt.Errorf("unknown transcription provider: %s", cfg.Transcription.Provider)
	}
}
