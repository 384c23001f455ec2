package uploads

import (
	"context"
	"io"
)

// Storage defines the interface for durable payload storage. Blobs are
// keyed by the same versioned name strings the transcript store uses.
type Storage interface {
	// Save writes the payload under name. A blob already present at that
	// name is left untouched and skipped is true; the caller decides
	// whether that is acceptable.
	Save(ctx context.Context, data io.Reader, name string) (path string, skipped bool, err error)

	// Exists reports whether a blob is stored under name
	Exists(ctx context.Context, name string) (bool, error)

	// Path returns the filesystem path a blob for name would live at
	Path(name string) string
}
