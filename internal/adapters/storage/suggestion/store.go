package suggestion

import (
	"context"

	domain "menucard/internal/domain/suggestion"
)

// Store persists Suggestion state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Suggestion, error)
	List(ctx context.Context) ([]domain.Suggestion, error)
	Append(ctx context.Context, value domain.Suggestion) error
	UpdateComment(ctx context.Context, id, comment string) error
	Delete(ctx context.Context, id string) error
}
