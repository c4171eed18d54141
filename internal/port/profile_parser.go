package port

import (
	"context"

	"resumely/internal/domain"
)

// ProfileParser turns extracted résumé text into a canonical profile.
type ProfileParser interface {
	Parse(ctx context.Context, text string) (*domain.CanonicalProfile, error)
}
