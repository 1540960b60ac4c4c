package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")
)

// Claims is the verified content of a bearer token.
type Claims struct {
	ID        string
	Email     string
	Fields    map[string]any
	IssuedAt  time.Time
	ExpiresAt time.Time
}
