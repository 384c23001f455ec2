package engine

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// WhisperCppTranscriber implements Transcriber by shelling out to a local
// whisper.cpp binary (whisper-cli from Homebrew or a whisper.cpp build)
type WhisperCppTranscriber struct {
	binaryPath string
	modelPath  string
	language   string
}

// Ensure WhisperCppTranscriber implements Transcriber interface
var _ Transcriber = (*WhisperCppTranscriber)(nil)

// NewWhisperCppTranscriber creates a transcriber backed by a local
// whisper.cpp installation. The binary is resolved once at construction.
func NewWhisperCppTranscriber(binaryPath, modelPath, language string) (*WhisperCppTranscriber, error) {
	resolved, err := exec.LookPath(binaryPath)
	if err != nil {
		return nil, fmt.Errorf("whisper binary not found at %s: %w", binaryPath, err)
	}

	return &WhisperCppTranscriber{
		binaryPath: resolved,
		modelPath:  modelPath,
		language:   language,
	}, nil
}

// Transcribe runs the whisper.cpp binary on the audio file and returns its
// text output
func (t *WhisperCppTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	cmd := exec.CommandContext(ctx, t.binaryPath,
		"-m", t.modelPath, // model path
		"-f", audioPath, // input file
		"-l", t.language, // language
		"-t", "4", // threads
		"-otxt", // output as text
		"-nt",   // no timestamps
	)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("whisper command failed: %w", err)
	}

	text := strings.TrimSpace(string(output))
	if text == "" {
		return "", fmt.Errorf("whisper produced no output for %s", audioPath)
	}

	return text, nil
}

// Provider returns the engine name
func (t *WhisperCppTranscriber) Provider() string {
	return "whisper_cpp"
}
