// Package memory holds a mutex-guarded in-memory transcript store. It backs
// deployments that only email transcripts, and every test that needs a repo.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/callscribe/callscribe/internal/models"
	"github.com/callscribe/callscribe/internal/repositories"
)

type transcriptRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.TranscriptRecord

	// now is swapped in tests to control created_at ordering.
	now func() time.Time
}

func NewTranscriptRepo() repositories.TranscriptRepo {
	return &transcriptRepo{nextID: 1, now: time.Now}
}

func (r *transcriptRepo) Add(ctx context.Context, fromNumber, durationSeconds, transcript string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, models.TranscriptRecord{
		ID:              r.nextID,
		CreatedAt:       r.now().UTC(),
		FromNumber:      fromNumber,
		DurationSeconds: durationSeconds,
		Transcript:      transcript,
	})
	r.nextID++
	return nil
}

func (r *transcriptRepo) List(ctx context.Context) ([]models.TranscriptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.TranscriptRecord, len(r.rows))
	// Insertion order is creation order; reverse for newest-first. Ties on
	// CreatedAt resolve to the later insert, same as the DESC index scan.
	for i, row := range r.rows {
		out[len(r.rows)-1-i] = row
	}
	return out, nil
}

func (r *transcriptRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			break
		}
	}
	return nil
}
