package engine

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITranscriber implements Transcriber against the OpenAI audio API
type OpenAITranscriber struct {
	client   *openai.Client
	language string
}

// Ensure OpenAITranscriber implements Transcriber interface
var _ Transcriber = (*OpenAITranscriber)(nil)

// NewOpenAITranscriber creates a transcriber backed by the OpenAI API
func NewOpenAITranscriber(apiKey, language string) *OpenAITranscriber {
	return &OpenAITranscriber{
		client:   openai.NewClient(apiKey),
		language: language,
	}
}

// Transcribe sends the audio file through the Whisper API
func (t *OpenAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Language: t.language,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}

// Provider returns the engine name
func (t *OpenAITranscriber) Provider() string {
	return "openai"
}
