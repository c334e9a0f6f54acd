package user

import "errors"

// Role constants. Roles are informational: they are shown to templates but
// never gate a route.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleAdmin, RoleStaff}

// Domain errors
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrInvalidRole   = errors.New("role must be one of: admin, staff")
	ErrWrongPassword = errors.New("incorrect password")
)

// User is a login account. Passwords are stored in clear text in the
// operator-managed users.json file and compared by exact equality.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	if !isValidRole(u.Role) {
		return ErrInvalidRole
	}
	return nil
}

// CheckPassword verifies a candidate password against the stored value.
// INVARIANT: User fields are not mutated
func (u *User) CheckPassword(candidate string) error {
	if u.Password == "" || u.Password != candidate {
		return ErrWrongPassword
	}
	return nil
}

func isValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
