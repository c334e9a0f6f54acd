package projections

import (
	"context"
	"errors"

	"menucard/internal/adapters/storage"
	"menucard/internal/domain/product"
	"menucard/internal/domain/suggestion"
)

// GetSuggestionSuggestionStore defines the suggestion store interface for
// the detail view.
type GetSuggestionSuggestionStore interface {
	GetByID(ctx context.Context, id string) (suggestion.Suggestion, error)
}

// GetSuggestionProductStore defines the product store interface for the
// detail view.
type GetSuggestionProductStore interface {
	GetByID(ctx context.Context, id string) (product.Product, error)
}

// GetSuggestionQuery identifies the suggestion to load.
type GetSuggestionQuery struct {
	ID string
}

// GetSuggestionDeps holds dependencies for the detail view.
type GetSuggestionDeps struct {
	SuggestionStore GetSuggestionSuggestionStore
	ProductStore    GetSuggestionProductStore
}

// GetSuggestionResult carries a suggestion and its referenced product. The
// product may be absent without that being an error; the view handles it.
type GetSuggestionResult struct {
	Suggestion   suggestion.Suggestion
	Product      product.Product
	ProductFound bool
}

// QueryGetSuggestion loads one suggestion and resolves its product.
// POST: Returns storage.ErrNotFound when the suggestion is missing; a
// missing product only clears ProductFound
func QueryGetSuggestion(ctx context.Context, query GetSuggestionQuery, deps GetSuggestionDeps) (GetSuggestionResult, error) {
	s, err := deps.SuggestionStore.GetByID(ctx, query.ID)
	if err != nil {
		return GetSuggestionResult{}, err
	}

	result := GetSuggestionResult{Suggestion: s}
	p, err := deps.ProductStore.GetByID(ctx, s.ProductID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return result, nil
		}
		return GetSuggestionResult{}, err
	}
	result.Product = p
	result.ProductFound = true
	return result, nil
}
