package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/htx-labs/transcriber-api/internal/models"
	"github.com/htx-labs/transcriber-api/internal/services/engine"
	"github.com/htx-labs/transcriber-api/internal/services/transcripts"
	"github.com/htx-labs/transcriber-api/internal/services/uploads"
	"github.com/htx-labs/transcriber-api/internal/services/versioning"
	apperrors "github.com/htx-labs/transcriber-api/pkg/errors"
)

// maxNameLen mirrors the size limit of the audio_file_name column
const maxNameLen = 100

// Service coordinates the ingestion pipeline for uploaded audio files:
// validate, assign identity, store bytes, transcribe, persist.
type Service struct {
	repo             transcripts.Repository
	versions         *versioning.Engine
	storage          uploads.Storage
	transcriber      engine.Transcriber
	identityAttempts int
	now              func() time.Time
}

// Option configures the ingestion service
type Option func(*Service)

// WithIdentityAttempts bounds the retries after an insert-time name
// collision
func WithIdentityAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.identityAttempts = n
		}
	}
}

// WithNowFunc overrides the clock (tests)
func WithNowFunc(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new ingestion service
func NewService(
	repo transcripts.Repository,
	versions *versioning.Engine,
	storage uploads.Storage,
	transcriber engine.Transcriber,
	opts ...Option,
) *Service {
	s := &Service{
		repo:             repo,
		versions:         versions,
		storage:          storage,
		transcriber:      transcriber,
		identityAttempts: 3,
		now:              func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IngestBatch processes each upload independently and returns one result
// per upload, in input order. A failed file never aborts its siblings.
func (s *Service) IngestBatch(ctx context.Context, batch []Upload) []FileResult {
	results := make([]FileResult, 0, len(batch))
	for _, upload := range batch {
		results = append(results, s.Ingest(ctx, upload))
	}
	return results
}

// Ingest runs the full pipeline for a single upload
func (s *Service) Ingest(ctx context.Context, upload Upload) FileResult {
	if upload.Filename == "" {
		return errorResult("unknown", "Filename is missing")
	}

	if err := validateName(upload.Filename); err != nil {
		return errorResult(upload.Filename, err.Error())
	}

	if !typeAllowed(upload.ContentType) {
		return errorResult(upload.Filename, fmt.Sprintf(
			"File type %s not allowed. Must be one of: %s",
			upload.ContentType, strings.Join(AllowedAudioTypes, ", ")))
	}

	// Hold the lineage lock from identity assignment through row insert so
	// concurrent uploads of the same base name cannot compute the same
	// version in-process. Across processes the unique index arbitrates and
	// the loop below retries.
	unlock := s.versions.LockBase(upload.Filename)
	defer unlock()

	var text *string
	finalName := upload.Filename

	for attempt := 0; attempt < s.identityAttempts; attempt++ {
		name, err := s.versions.AssignIdentity(ctx, upload.Filename)
		if err != nil {
			return errorResult(finalName, err.Error())
		}
		finalName = name

		if len(name) > maxNameLen {
			return errorResult(name, fmt.Sprintf("versioned name exceeds %d characters", maxNameLen))
		}

		audioPath, skipped, err := s.saveBlob(ctx, upload, name)
		if err != nil {
			return errorResult(name, err.Error())
		}
		if skipped {
			log.Printf("Blob for %s already present, reusing stored bytes", name)
		}

		// Transcribe once; a collision retry reuses the text since the
		// payload has not changed
		if text == nil {
			out, err := s.transcriber.Transcribe(ctx, audioPath)
			if err != nil {
				// The engine's own message must reach the client
				return errorResult(name, apperrors.TranscriptionError(s.transcriber.Provider(), err).Error())
			}
			text = &out
		}

		now := s.now()
		transcript := &models.Transcript{
			AudioFileName:   name,
			TranscribedText: text,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		err = s.repo.Insert(ctx, transcript)
		if err == nil {
			return FileResult{
				Filename:      name,
				Status:        StatusSuccess,
				Transcription: transcript,
			}
		}
		if errors.Is(err, transcripts.ErrNameTaken) {
			log.Printf("Identity %s taken at insert time, recomputing (attempt %d)", name, attempt+1)
			continue
		}
		return errorResult(name, err.Error())
	}

	return errorResult(finalName, apperrors.IdentityConflictError(finalName, s.identityAttempts).Message)
}

// saveBlob opens the payload, writes it under name, and always closes the
// handle
func (s *Service) saveBlob(ctx context.Context, upload Upload, name string) (string, bool, error) {
	rc, err := upload.Open()
	if err != nil {
		return "", false, fmt.Errorf("opening upload: %w", err)
	}
	defer rc.Close()

	path, skipped, err := s.storage.Save(ctx, rc, name)
	if err != nil {
		return "", false, fmt.Errorf("storing upload: %w", err)
	}
	return path, skipped, nil
}

// validateName rejects names that are unsafe as storage keys. Names are
// rejected rather than rewritten so the stored identity always matches the
// uploaded one.
func validateName(name string) error {
	if len(name) > maxNameLen {
		return fmt.Errorf("filename exceeds %d characters", maxNameLen)
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("filename %q contains unsafe path characters", name)
	}
	return nil
}

func typeAllowed(contentType string) bool {
	for _, allowed := range AllowedAudioTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func errorResult(filename, message string) FileResult {
	return FileResult{
		Filename: filename,
		Status:   StatusError,
		Message:  message,
	}
}
