package projections

import (
	"context"
	"strings"

	"menucard/internal/domain/product"
)

// GetProductListProductStore defines the product store interface for the
// catalog listing.
type GetProductListProductStore interface {
	List(ctx context.Context) ([]product.Product, error)
}

// GetProductListQuery carries the raw filter parameters. All filters are
// optional and combine with logical AND. Featured and Suggest filter only
// when the literal value is "true", matching how the query string arrives.
type GetProductListQuery struct {
	Family   string
	Featured string
	Suggest  string
	Search   string
}

// GetProductListDeps holds dependencies for the catalog listing.
type GetProductListDeps struct {
	ProductStore GetProductListProductStore
}

// GetProductListResult carries the filtered catalog plus the view state the
// page needs: the family set always reflects the unfiltered catalog so the
// navigation buttons stay stable, and CurrentFamily/Search echo the query.
type GetProductListResult struct {
	Products      []product.Product `json:"products"`
	Families      []string          `json:"families"`
	CurrentFamily string            `json:"currentFamily"`
	Search        string            `json:"search"`
}

// QueryGetProductList filters the catalog and derives the family set.
// POST: Every returned product satisfies all provided filters; Families is
// the distinct family list of the unfiltered catalog in first-seen order
func QueryGetProductList(ctx context.Context, query GetProductListQuery, deps GetProductListDeps) (GetProductListResult, error) {
	all, err := deps.ProductStore.List(ctx)
	if err != nil {
		return GetProductListResult{}, err
	}

	filtered := make([]product.Product, 0, len(all))
	search := strings.ToLower(query.Search)
	for _, p := range all {
		if query.Family != "" && p.Family != query.Family {
			continue
		}
		if query.Featured == "true" && !p.Featured {
			continue
		}
		if query.Suggest == "true" && !p.Suggest {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	seen := make(map[string]bool, len(all))
	families := []string{}
	for _, p := range all {
		if !seen[p.Family] {
			seen[p.Family] = true
			families = append(families, p.Family)
		}
	}

	return GetProductListResult{
		Products:      filtered,
		Families:      families,
		CurrentFamily: query.Family,
		Search:        query.Search,
	}, nil
}
