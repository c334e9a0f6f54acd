package suggestion

import (
	"context"
	"fmt"

	"menucard/internal/adapters/storage"
	"menucard/internal/adapters/storage/jsonfile"
	domain "menucard/internal/domain/suggestion"
)

// JSONStore implements Store over a JSON array document. Mutations run
// inside the collection's Mutate so a full read-modify-write cycle holds
// the lock and overlapping writers cannot lose updates.
type JSONStore struct {
	coll *jsonfile.Collection[domain.Suggestion]
}

// NewJSONStore creates a JSONStore backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{coll: jsonfile.New[domain.Suggestion](path)}
}

// GetByID retrieves a suggestion by ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *JSONStore) GetByID(ctx context.Context, id string) (domain.Suggestion, error) {
	suggestions, err := s.List(ctx)
	if err != nil {
		return domain.Suggestion{}, err
	}
	for _, sg := range suggestions {
		if sg.ID == id {
			return sg, nil
		}
	}
	return domain.Suggestion{}, storage.ErrNotFound
}

// List returns all suggestions in storage (insertion) order.
func (s *JSONStore) List(ctx context.Context) ([]domain.Suggestion, error) {
	suggestions, err := s.coll.Load()
	if err != nil {
		return nil, err
	}
	if err := validateAll(suggestions, s.coll.Path()); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// Append adds a suggestion to the end of the collection.
// PRE: value has been validated
// POST: value is the last record in the document
func (s *JSONStore) Append(ctx context.Context, value domain.Suggestion) error {
	if err := value.Validate(); err != nil {
		return err
	}
	return s.coll.Mutate(func(records []domain.Suggestion) ([]domain.Suggestion, error) {
		if err := validateAll(records, s.coll.Path()); err != nil {
			return nil, err
		}
		return append(records, value), nil
	})
}

// UpdateComment replaces the comment of the suggestion with the given id,
// preserving id and productId.
// PRE: id is non-empty
// POST: Returns storage.ErrNotFound without writing when no record matches
func (s *JSONStore) UpdateComment(ctx context.Context, id, comment string) error {
	return s.coll.Mutate(func(records []domain.Suggestion) ([]domain.Suggestion, error) {
		for i := range records {
			if records[i].ID == id {
				records[i].Comment = comment
				if err := records[i].Validate(); err != nil {
					return nil, err
				}
				return records, nil
			}
		}
		return nil, storage.ErrNotFound
	})
}

// Delete removes exactly the suggestion with the given id, preserving the
// relative order of the rest.
// PRE: id is non-empty
// POST: Returns storage.ErrNotFound without writing when no record matches
func (s *JSONStore) Delete(ctx context.Context, id string) error {
	return s.coll.Mutate(func(records []domain.Suggestion) ([]domain.Suggestion, error) {
		for i := range records {
			if records[i].ID == id {
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, storage.ErrNotFound
	})
}

func validateAll(records []domain.Suggestion, path string) error {
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return fmt.Errorf("invalid suggestion record %d in %s: %w", i, path, err)
		}
	}
	return nil
}
