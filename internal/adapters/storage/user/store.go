package user

import (
	"context"

	domain "menucard/internal/domain/user"
)

// Store reads User state. Accounts live in the operator-managed users.json
// file; the application never writes to it.
type Store interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}
