package cmd

import (
	"fmt"
	"os"

	"github.com/htx-labs/transcriber-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcriber-api",
	Short: "Audio Transcriber API server",
	Long: `Audio Transcriber API - an audio ingestion and transcription service

Uploaded audio files are given versioned identities, transcribed through a
speech-to-text engine, and stored for exact and fuzzy retrieval.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help don't touch config, so they skip it entirely.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
