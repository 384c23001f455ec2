package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestServeCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "serve command with help",
			args:           []string{"serve", "--help"},
			wantErr:        false,
			expectedOutput: "Start the Audio Transcriber API server",
		},
		{
			name:           "serve command with invalid port",
			args:           []string{"serve", "--port", "invalid"},
			wantErr:        true,
			expectedOutput: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" && !strings.Contains(buf.String(), tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, buf.String())
			}
		})
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}

	for _, name := range []string{"host", "port"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected %q flag to be registered", name)
		}
	}
}
