package transcripts

import (
	"context"

	"github.com/htx-labs/transcriber-api/internal/models"
)

// Service defines the interface for transcript queries exposed to handlers
type Service interface {
	// ListAll retrieves every transcript, newest first
	ListAll(ctx context.Context) ([]models.Transcript, error)

	// Search retrieves transcripts whose audio file name contains the query,
	// case-insensitively, ordered by name then creation time descending
	Search(ctx context.Context, query string) ([]models.Transcript, error)
}

// Repository defines the interface for transcript persistence
type Repository interface {
	// ExistsExact reports whether a transcript with the exact name exists
	ExistsExact(ctx context.Context, name string) (bool, error)

	// FindLatestByPrefix retrieves the most recently created transcript whose
	// name begins with prefix, or nil when none matches
	FindLatestByPrefix(ctx context.Context, prefix string) (*models.Transcript, error)

	// Insert creates a new transcript row. A name collision is reported as
	// ErrNameTaken
	Insert(ctx context.Context, transcript *models.Transcript) error

	// ListAll retrieves every transcript ordered by creation time descending
	ListAll(ctx context.Context) ([]models.Transcript, error)

	// Search retrieves transcripts matching the query as a case-insensitive
	// substring of the audio file name
	Search(ctx context.Context, query string) ([]models.Transcript, error)
}
