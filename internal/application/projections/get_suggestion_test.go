package projections

import (
	"context"
	"errors"
	"testing"

	"menucard/internal/adapters/storage"
	"menucard/internal/domain/product"
	"menucard/internal/domain/suggestion"
)

// mockSuggestionGetter implements GetSuggestionSuggestionStore for testing.
type mockSuggestionGetter struct {
	suggestions map[string]suggestion.Suggestion
}

// GetByID returns a seeded suggestion or storage.ErrNotFound.
func (m *mockSuggestionGetter) GetByID(_ context.Context, id string) (suggestion.Suggestion, error) {
	if s, ok := m.suggestions[id]; ok {
		return s, nil
	}
	return suggestion.Suggestion{}, storage.ErrNotFound
}

// mockProductGetter implements GetSuggestionProductStore for testing.
type mockProductGetter struct {
	products map[string]product.Product
}

// GetByID returns a seeded product or storage.ErrNotFound.
func (m *mockProductGetter) GetByID(_ context.Context, id string) (product.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return product.Product{}, storage.ErrNotFound
}

// TestQueryGetSuggestion tests the detail view including the missing-product
// degradation.
func TestQueryGetSuggestion(t *testing.T) {
	deps := GetSuggestionDeps{
		SuggestionStore: &mockSuggestionGetter{suggestions: map[string]suggestion.Suggestion{
			"s1": {ID: "s1", ProductID: "1", Comment: "more cheese"},
			"s2": {ID: "s2", ProductID: "gone", Comment: "?"},
		}},
		ProductStore: &mockProductGetter{products: map[string]product.Product{
			"1": {ID: "1", Title: "Classic", Family: "burger"},
		}},
	}

	result, err := QueryGetSuggestion(context.Background(), GetSuggestionQuery{ID: "s1"}, deps)
	if err != nil {
		t.Fatalf("QueryGetSuggestion failed: %v", err)
	}
	if !result.ProductFound || result.Product.Title != "Classic" {
		t.Errorf("got %+v, want resolved Classic product", result)
	}

	// Missing product is not an error; the view handles it
	result, err = QueryGetSuggestion(context.Background(), GetSuggestionQuery{ID: "s2"}, deps)
	if err != nil {
		t.Fatalf("QueryGetSuggestion with dangling product failed: %v", err)
	}
	if result.ProductFound {
		t.Error("ProductFound = true for a dangling reference")
	}
	if result.Suggestion.Comment != "?" {
		t.Errorf("suggestion not returned: %+v", result.Suggestion)
	}

	// Missing suggestion is not-found
	if _, err := QueryGetSuggestion(context.Background(), GetSuggestionQuery{ID: "ghost"}, deps); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("missing suggestion = %v, want ErrNotFound", err)
	}
}
