package ports

import "github.com/techhunt/api/internal/core/domain"

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// Issue signs payload into a token that expires one hour after issuance.
	Issue(payload map[string]any) (string, error)
	// Verify checks signature and expiry and returns the decoded claims.
	Verify(token string) (*domain.Claims, error)
}
