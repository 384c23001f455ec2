package versioning

import (
	"context"
	"fmt"

	"github.com/htx-labs/transcriber-api/internal/services/filename"
	"github.com/htx-labs/transcriber-api/internal/services/transcripts"
)

// Engine decides the identity an uploaded file is stored under. Re-uploads
// sharing a base name become successive versions of one lineage instead of
// being rejected or overwritten.
type Engine struct {
	repo  transcripts.Repository
	locks *KeyLock
}

// NewEngine creates a new versioning engine
func NewEngine(repo transcripts.Repository) *Engine {
	return &Engine{
		repo:  repo,
		locks: NewKeyLock(),
	}
}

// LockBase acquires the serialization lock for the lineage the uploaded
// name belongs to. Callers hold it from AssignIdentity through row insert.
func (e *Engine) LockBase(uploadedName string) (unlock func()) {
	return e.locks.Lock(filename.BasePrefix(uploadedName))
}

// AssignIdentity computes the versioned name an upload will be stored
// under. The first upload of a base name becomes <base>_ver_1; later
// uploads continue the lineage from its most recently created version.
// Existence checks here are advisory only; the store's unique index is the
// final arbiter and callers retry on transcripts.ErrNameTaken.
func (e *Engine) AssignIdentity(ctx context.Context, uploadedName string) (string, error) {
	candidate := filename.NextVersionedName(uploadedName)

	exists, err := e.repo.ExistsExact(ctx, candidate)
	if err != nil {
		return "", fmt.Errorf("assigning identity for %q: %w", uploadedName, err)
	}
	if !exists {
		return candidate, nil
	}

	latest, err := e.repo.FindLatestByPrefix(ctx, filename.BasePrefix(uploadedName))
	if err != nil {
		return "", fmt.Errorf("assigning identity for %q: %w", uploadedName, err)
	}
	if latest == nil {
		// The exact-name row vanished between the two lookups; the
		// candidate is the best remaining guess.
		return candidate, nil
	}

	return filename.NextVersionedName(latest.AudioFileName), nil
}
