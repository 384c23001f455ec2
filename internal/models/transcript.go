package models

import (
	"time"
)

// Transcript represents a persisted transcription of one uploaded audio file.
// AudioFileName is the versioned identity string and doubles as the key of
// the stored payload on disk.
type Transcript struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	AudioFileName   string    `gorm:"size:100;uniqueIndex;not null" json:"audio_file_name"`
	TranscribedText *string   `gorm:"type:text" json:"transcribed_text"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// TableName specifies the table name for Transcript
func (Transcript) TableName() string {
	return "transcriptions"
}
