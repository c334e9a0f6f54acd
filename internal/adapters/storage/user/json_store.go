package user

import (
	"context"
	"fmt"

	"menucard/internal/adapters/storage"
	"menucard/internal/adapters/storage/jsonfile"
	domain "menucard/internal/domain/user"
)

// JSONStore implements Store over a JSON array document.
type JSONStore struct {
	coll *jsonfile.Collection[domain.User]
}

// NewJSONStore creates a JSONStore backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{coll: jsonfile.New[domain.User](path)}
}

// GetByUsername retrieves a user by username.
// PRE: username is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *JSONStore) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	users, err := s.coll.Load()
	if err != nil {
		return domain.User{}, err
	}
	for i := range users {
		if err := users[i].Validate(); err != nil {
			return domain.User{}, fmt.Errorf("invalid user record %d in %s: %w", i, s.coll.Path(), err)
		}
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, storage.ErrNotFound
}
