package projections

import (
	"context"
	"testing"

	"menucard/internal/domain/product"
	"menucard/internal/domain/suggestion"
)

// mockSuggestionLister implements GetSuggestionListSuggestionStore for testing.
type mockSuggestionLister struct {
	suggestions []suggestion.Suggestion
}

// List returns the seeded suggestions in order.
func (m *mockSuggestionLister) List(_ context.Context) ([]suggestion.Suggestion, error) {
	return m.suggestions, nil
}

// TestQueryGetSuggestionList_Enrichment tests the product join and the
// placeholder fallback for dangling references.
func TestQueryGetSuggestionList_Enrichment(t *testing.T) {
	deps := GetSuggestionListDeps{
		SuggestionStore: &mockSuggestionLister{suggestions: []suggestion.Suggestion{
			{ID: "s1", ProductID: "1", Comment: "more cheese"},
			{ID: "s2", ProductID: "missing-product", Comment: "?"},
			{ID: "s3", ProductID: "2", Comment: "less ice"},
		}},
		ProductStore: &mockProductLister{products: []product.Product{
			{ID: "1", Title: "Classic", Family: "burger", Image: "classic.jpg"},
			{ID: "2", Title: "Cola", Family: "drink", Image: "cola.jpg"},
		}},
	}

	enriched, err := QueryGetSuggestionList(context.Background(), deps)
	if err != nil {
		t.Fatalf("QueryGetSuggestionList failed: %v", err)
	}
	if len(enriched) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(enriched))
	}

	// Storage order preserved
	if enriched[0].ID != "s1" || enriched[1].ID != "s2" || enriched[2].ID != "s3" {
		t.Errorf("order not preserved: %+v", enriched)
	}

	if enriched[0].ProductTitle != "Classic" || enriched[0].ProductImage != "classic.jpg" {
		t.Errorf("s1 enrichment = (%q, %q), want Classic/classic.jpg", enriched[0].ProductTitle, enriched[0].ProductImage)
	}
	if enriched[2].ProductTitle != "Cola" {
		t.Errorf("s3 enrichment = %q, want Cola", enriched[2].ProductTitle)
	}

	// Dangling reference degrades to placeholders, not an error
	if enriched[1].ProductTitle != PlaceholderProductTitle {
		t.Errorf("dangling title = %q, want %q", enriched[1].ProductTitle, PlaceholderProductTitle)
	}
	if enriched[1].ProductImage != PlaceholderProductImage {
		t.Errorf("dangling image = %q, want %q", enriched[1].ProductImage, PlaceholderProductImage)
	}
}

// TestQueryGetSuggestionList_Empty tests the empty collection case.
func TestQueryGetSuggestionList_Empty(t *testing.T) {
	deps := GetSuggestionListDeps{
		SuggestionStore: &mockSuggestionLister{},
		ProductStore:    &mockProductLister{},
	}

	enriched, err := QueryGetSuggestionList(context.Background(), deps)
	if err != nil {
		t.Fatalf("QueryGetSuggestionList failed: %v", err)
	}
	if len(enriched) != 0 {
		t.Errorf("got %d suggestions, want 0", len(enriched))
	}
}
