package projections

import (
	"context"

	"menucard/internal/domain/product"
	"menucard/internal/domain/suggestion"
)

// Placeholder values shown when a suggestion references a product that no
// longer exists in the catalog.
const (
	PlaceholderProductTitle = "Product not found"
	PlaceholderProductImage = "img-not-found.jpg"
)

// GetSuggestionListSuggestionStore defines the suggestion store interface
// for the enriched listing.
type GetSuggestionListSuggestionStore interface {
	List(ctx context.Context) ([]suggestion.Suggestion, error)
}

// GetSuggestionListProductStore defines the product store interface for the
// enriched listing.
type GetSuggestionListProductStore interface {
	List(ctx context.Context) ([]product.Product, error)
}

// GetSuggestionListDeps holds dependencies for the enriched listing.
type GetSuggestionListDeps struct {
	SuggestionStore GetSuggestionListSuggestionStore
	ProductStore    GetSuggestionListProductStore
}

// EnrichedSuggestion is a Suggestion joined with denormalized product data
// for display.
type EnrichedSuggestion struct {
	suggestion.Suggestion
	ProductTitle string `json:"productTitle"`
	ProductImage string `json:"productImage"`
}

// QueryGetSuggestionList lists all suggestions in storage order, each
// enriched with the referenced product's title and image.
// POST: Output order follows storage order; a dangling productId yields the
// placeholder title and image rather than an error
func QueryGetSuggestionList(ctx context.Context, deps GetSuggestionListDeps) ([]EnrichedSuggestion, error) {
	suggestions, err := deps.SuggestionStore.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := deps.ProductStore.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	enriched := make([]EnrichedSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		e := EnrichedSuggestion{
			Suggestion:   s,
			ProductTitle: PlaceholderProductTitle,
			ProductImage: PlaceholderProductImage,
		}
		if p, ok := byID[s.ProductID]; ok {
			e.ProductTitle = p.Title
			e.ProductImage = p.Image
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}
