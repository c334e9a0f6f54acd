package product

import (
	"context"

	domain "menucard/internal/domain/product"
)

// Store reads Product state. The catalog is read-only: no method mutates it.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
