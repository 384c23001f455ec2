package transcripts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/htx-labs/transcriber-api/internal/models"
	"gorm.io/gorm"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// Ensure repository implements Repository interface
var _ Repository = (*repository)(nil)

// NewRepository creates a new transcript repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ExistsExact reports whether a transcript with the exact name exists
func (r *repository) ExistsExact(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Transcript{}).
		Where("audio_file_name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking name %q: %w", name, err)
	}
	return count > 0, nil
}

// FindLatestByPrefix retrieves the most recently created transcript whose
// audio file name begins with prefix. Returns nil when nothing matches.
func (r *repository) FindLatestByPrefix(ctx context.Context, prefix string) (*models.Transcript, error) {
	var transcript models.Transcript
	err := r.db.WithContext(ctx).
		Where("audio_file_name LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Order("created_at DESC").
		First(&transcript).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding latest by prefix %q: %w", prefix, err)
	}
	return &transcript, nil
}

// Insert creates a new transcript row
func (r *repository) Insert(ctx context.Context, transcript *models.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("inserting %q: %w", transcript.AudioFileName, ErrNameTaken)
		}
		return fmt.Errorf("inserting %q: %w", transcript.AudioFileName, err)
	}
	return nil
}

// ListAll retrieves every transcript ordered by creation time descending
func (r *repository) ListAll(ctx context.Context) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&transcripts).Error; err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}
	return transcripts, nil
}

// Search retrieves transcripts matching the query as a case-insensitive
// substring of the audio file name, ordered by name then creation time
// descending
func (r *repository) Search(ctx context.Context, query string) ([]models.Transcript, error) {
	var transcripts []models.Transcript
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(audio_file_name) LIKE ? ESCAPE '\\'", pattern).
		Order("audio_file_name DESC, created_at DESC").
		Find(&transcripts).Error; err != nil {
		return nil, fmt.Errorf("searching transcripts for %q: %w", query, err)
	}
	return transcripts, nil
}

// escapeLike escapes LIKE metacharacters so literal underscores and percent
// signs in file names do not widen matches
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
