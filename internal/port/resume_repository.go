package port

import (
	"context"

	"github.com/google/uuid"

	"resumely/internal/domain"
)

// ResumeRepository abstracts persistence of résumé records.
type ResumeRepository interface {
	Create(ctx context.Context, resume *domain.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error)
	List(ctx context.Context, offset, limit int) ([]domain.Resume, int, error)
	ListParsed(ctx context.Context) ([]domain.Resume, error)
	UpdateParseResult(ctx context.Context, resume *domain.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
}
