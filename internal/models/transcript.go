package models

import "time"

// TranscriptRecord is the only persisted entity. Rows are immutable after
// insert; the store only ever appends and deletes whole records.
type TranscriptRecord struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime;index" json:"created_at"`
	FromNumber      string    `gorm:"column:from_number;type:text" json:"from_number"`
	DurationSeconds string    `gorm:"column:duration_seconds;type:text" json:"duration_seconds"`
	Transcript      string    `gorm:"column:transcript;type:text" json:"transcript"`
}

func (TranscriptRecord) TableName() string { return "transcripts" }
