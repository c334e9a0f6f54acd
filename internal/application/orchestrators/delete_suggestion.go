package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"menucard/internal/adapters/storage"
)

// SuggestionStoreForDelete defines the store interface needed by
// DeleteSuggestion.
type SuggestionStoreForDelete interface {
	Delete(ctx context.Context, id string) error
}

// DeleteSuggestionInput carries input for the delete orchestrator.
type DeleteSuggestionInput struct {
	ID string
}

// DeleteSuggestionDeps holds dependencies for DeleteSuggestion.
type DeleteSuggestionDeps struct {
	SuggestionStore SuggestionStoreForDelete
}

// ExecuteDeleteSuggestion removes exactly one suggestion. A second delete of
// the same id reports not-found even though the end state is unchanged.
// PRE: input.ID is non-empty
// POST: Returns ErrSuggestionNotFound when no record matches
func ExecuteDeleteSuggestion(ctx context.Context, input DeleteSuggestionInput, deps DeleteSuggestionDeps) error {
	if err := deps.SuggestionStore.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrSuggestionNotFound
		}
		return err
	}

	slog.Info("suggestion_event", "event", "deleted", "id", input.ID)
	return nil
}
