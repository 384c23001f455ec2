package transcripts

import "errors"

// Common errors
var (
	// ErrNameTaken is returned by Insert when the audio file name is already
	// present. The unique index on audio_file_name is the single source of
	// truth for collisions; callers retry identity assignment on this error.
	ErrNameTaken = errors.New("audio file name already taken")
)
