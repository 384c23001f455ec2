package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/htx-labs/transcriber-api/api"
	apitypes "github.com/htx-labs/transcriber-api/api/types"
	"github.com/htx-labs/transcriber-api/internal/database"
	"github.com/htx-labs/transcriber-api/internal/services/engine"
	"github.com/htx-labs/transcriber-api/internal/services/ingest"
	"github.com/htx-labs/transcriber-api/internal/services/transcripts"
	"github.com/htx-labs/transcriber-api/internal/services/uploads"
	"github.com/htx-labs/transcriber-api/internal/services/versioning"
	"github.com/htx-labs/transcriber-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Audio Transcriber API server with the configured settings.

The server accepts audio uploads on /transcribe, serves stored transcripts
on /transcriptions and /search, and reports store health on /health.

Example:
  transcriber-api serve
  transcriber-api serve --port 9090
  transcriber-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.InitializeWithMigrations()
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	deps, err := buildDependencies(cfg, db)
	if err != nil {
		return err
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDatabase(db)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	log.Printf("Starting Audio Transcriber API server on %s", address)
	log.Printf("Transcription provider: %s", deps.Transcriber.Provider())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
		log.Println("Shutting down server...")
	case err := <-serverErr:
		log.Printf("Server error: %v", err)
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires the ingestion pipeline and query services.
// The transcription engine is constructed once here and shared by every
// request for its lifetime.
func buildDependencies(cfg *config.Config, db *database.DB) (*apitypes.Dependencies, error) {
	storage, err := uploads.NewFilesystemStorage(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	transcriber, err := engine.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transcription engine: %w", err)
	}

	repo := transcripts.NewRepository(db.DB)
	ingestService := ingest.NewService(
		repo,
		versioning.NewEngine(repo),
		storage,
		transcriber,
		ingest.WithIdentityAttempts(cfg.Ingest.IdentityAttempts),
	)

	return &apitypes.Dependencies{
		DB:                db,
		IngestService:     ingestService,
		TranscriptService: transcripts.NewService(repo),
		Transcriber:       transcriber,
	}, nil
}
