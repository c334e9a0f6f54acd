package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"menucard/internal/adapters/storage"
	"menucard/internal/domain/suggestion"
)

// ErrSuggestionNotFound is returned when an update or delete targets an id
// that no record matches.
var ErrSuggestionNotFound = errors.New("suggestion not found")

// SuggestionStoreForUpdate defines the store interface needed by
// UpdateSuggestion.
type SuggestionStoreForUpdate interface {
	UpdateComment(ctx context.Context, id, comment string) error
}

// UpdateSuggestionInput carries input for the update orchestrator.
type UpdateSuggestionInput struct {
	ID      string
	Comment string `json:"comment"`
}

// UpdateSuggestionDeps holds dependencies for UpdateSuggestion.
type UpdateSuggestionDeps struct {
	SuggestionStore SuggestionStoreForUpdate
}

// ExecuteUpdateSuggestion replaces the comment of an existing suggestion,
// preserving its id and productId. The operation is idempotent: repeating it
// with the same input leaves the same end state.
// PRE: input.ID is non-empty
// POST: Returns ErrSuggestionNotFound when no record matches
func ExecuteUpdateSuggestion(ctx context.Context, input UpdateSuggestionInput, deps UpdateSuggestionDeps) error {
	if input.Comment == "" {
		return suggestion.ErrEmptyComment
	}
	if len(input.Comment) > suggestion.MaxCommentLength {
		return suggestion.ErrCommentTooLong
	}

	if err := deps.SuggestionStore.UpdateComment(ctx, input.ID, input.Comment); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSuggestionNotFound
		}
		return err
	}

	slog.Info("suggestion_event", "event", "updated", "id", input.ID)
	return nil
}
