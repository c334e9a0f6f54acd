package product

import (
	"context"
	"fmt"

	"menucard/internal/adapters/storage"
	"menucard/internal/adapters/storage/jsonfile"
	domain "menucard/internal/domain/product"
)

// JSONStore implements Store over a JSON array document.
type JSONStore struct {
	coll *jsonfile.Collection[domain.Product]
}

// NewJSONStore creates a JSONStore backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{coll: jsonfile.New[domain.Product](path)}
}

// GetByID retrieves a product by ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *JSONStore) GetByID(ctx context.Context, id string) (domain.Product, error) {
	products, err := s.load()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, storage.ErrNotFound
}

// List returns the full catalog in storage order.
func (s *JSONStore) List(ctx context.Context) ([]domain.Product, error) {
	return s.load()
}

// load reads the document and validates every record at the storage
// boundary. A malformed record fails the whole read rather than surfacing
// zero-valued fields downstream.
func (s *JSONStore) load() ([]domain.Product, error) {
	products, err := s.coll.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid product record %d in %s: %w", i, s.coll.Path(), err)
		}
	}
	return products, nil
}
