// Package repositories defines the transcript store contract shared by the
// Postgres and in-memory implementations.
package repositories

import (
	"context"

	"github.com/callscribe/callscribe/internal/models"
)

// TranscriptRepo is a single-writer repository: implementations must
// serialize Add, List and Delete against each other so concurrent pipelines
// cannot race on id assignment or observe a half-applied mutation.
type TranscriptRepo interface {
	// Add inserts a new record; id and creation time are assigned by the
	// store, never by the caller.
	Add(ctx context.Context, fromNumber, durationSeconds, transcript string) error
	// List returns all records newest-first.
	List(ctx context.Context) ([]models.TranscriptRecord, error)
	// Delete removes the record with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, id uint) error
}
