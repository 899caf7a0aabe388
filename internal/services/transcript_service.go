package services

import (
	"context"

	"github.com/callscribe/callscribe/internal/models"
	"github.com/callscribe/callscribe/internal/repositories"
	"github.com/callscribe/callscribe/internal/utils"
)

// TranscriptService backs the management API: read and delete only. Records
// are immutable after insert, so there is no update surface.
type TranscriptService interface {
	List(ctx context.Context) ([]models.TranscriptRecord, error)
	Delete(ctx context.Context, id uint) error
}

type transcriptService struct {
	repo repositories.TranscriptRepo
}

func NewTranscriptService(repo repositories.TranscriptRepo) TranscriptService {
	return &transcriptService{repo: repo}
}

func (s *transcriptService) List(ctx context.Context) ([]models.TranscriptRecord, error) {
	const op = "TranscriptService.List"

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list transcripts", err)
	}
	return rows, nil
}

func (s *transcriptService) Delete(ctx context.Context, id uint) error {
	const op = "TranscriptService.Delete"

	if id == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete transcript", err)
	}
	return nil
}
