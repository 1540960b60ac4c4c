package domain

import "errors"

// Role is the privilege label stored on a user record. The zero value means
// the user holds no role.
type Role string

const (
	RoleNone      Role = ""
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user with this email already exists")
	ErrMissingEmail = errors.New("email is required")
	ErrInvalidRole  = errors.New("invalid role")
)

// Valid reports whether r can be granted through a role patch.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleModerator
}

// User is a registered account. Profile carries every field the client
// submitted at registration other than email, role and _id.
type User struct {
	ID      string
	Email   string
	Role    Role
	Profile map[string]any
}

// HasRole reports whether the user currently holds role.
func (u *User) HasRole(role Role) bool {
	return u != nil && role != RoleNone && u.Role == role
}
