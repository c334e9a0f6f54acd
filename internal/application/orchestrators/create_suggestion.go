package orchestrators

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"menucard/internal/domain/suggestion"
)

// SuggestionStoreForCreate defines the store interface needed by
// CreateSuggestion.
type SuggestionStoreForCreate interface {
	Append(ctx context.Context, value suggestion.Suggestion) error
}

// CreateSuggestionInput carries input for the create orchestrator. ProductID
// is taken as given: the catalog is not consulted, and a dangling reference
// is resolved to placeholder data at read time.
type CreateSuggestionInput struct {
	ProductID string `json:"productId"`
	Comment   string `json:"comment"`
}

// CreateSuggestionResult carries the generated suggestion id.
type CreateSuggestionResult struct {
	ID string
}

// CreateSuggestionDeps holds dependencies for CreateSuggestion.
type CreateSuggestionDeps struct {
	SuggestionStore SuggestionStoreForCreate
}

// ExecuteCreateSuggestion appends a new suggestion with a generated UUID.
// PRE: input carries the raw request body values
// POST: On success the suggestion is the last record in the collection
func ExecuteCreateSuggestion(ctx context.Context, input CreateSuggestionInput, deps CreateSuggestionDeps) (CreateSuggestionResult, error) {
	s := suggestion.Suggestion{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		Comment:   input.Comment,
	}
	if err := s.Validate(); err != nil {
		return CreateSuggestionResult{}, err
	}

	if err := deps.SuggestionStore.Append(ctx, s); err != nil {
		return CreateSuggestionResult{}, err
	}

	slog.Info("suggestion_event", "event", "created", "id", s.ID, "product_id", s.ProductID)
	return CreateSuggestionResult{ID: s.ID}, nil
}
