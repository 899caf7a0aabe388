package postgres

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/callscribe/callscribe/internal/models"
	"github.com/callscribe/callscribe/internal/repositories"
)

type transcriptRepo struct {
	db *gorm.DB

	// mu enforces the single-writer discipline at the application level.
	// Postgres would serialize the inserts anyway, but List ordering and
	// add/delete interleaving are part of the store contract, not the
	// database's.
	mu sync.Mutex
}

func NewTranscriptRepo(db *gorm.DB) repositories.TranscriptRepo {
	return &transcriptRepo{db: db}
}

// Migrate creates the transcripts table if missing.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.TranscriptRecord{})
}

func (r *transcriptRepo) Add(ctx context.Context, fromNumber, durationSeconds, transcript string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := &models.TranscriptRecord{
		FromNumber:      fromNumber,
		DurationSeconds: durationSeconds,
		Transcript:      transcript,
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *transcriptRepo) List(ctx context.Context) ([]models.TranscriptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []models.TranscriptRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *transcriptRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// gorm reports zero RowsAffected for unknown ids, which is exactly the
	// no-op contract; no error translation needed.
	return r.db.WithContext(ctx).Delete(&models.TranscriptRecord{}, id).Error
}
