package transcripts

import (
	"context"

	"github.com/htx-labs/transcriber-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repo Repository
}

// NewService creates a new transcript query service
func NewService(repo Repository) Service {
	return &ServiceImpl{repo: repo}
}

// ListAll retrieves every transcript, newest first
func (s *ServiceImpl) ListAll(ctx context.Context) ([]models.Transcript, error) {
	return s.repo.ListAll(ctx)
}

// Search retrieves transcripts matching the query. An empty result is a
// valid outcome, not an error.
func (s *ServiceImpl) Search(ctx context.Context, query string) ([]models.Transcript, error) {
	return s.repo.Search(ctx, query)
}
