package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techhunt/api/internal/core/domain"
)

// fixedClock returns a TokenService whose clock reads *now.
func fixedClock(secret string, now *time.Time) *TokenService {
	svc := NewTokenService(secret)
	svc.now = func() time.Time { return *now }
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret")

	token, err := svc.Issue(map[string]any{"email": "alice@example.com", "name": "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Fields["name"])
	assert.NotEmpty(t, claims.ID, "jti should be set")
	assert.Equal(t, TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt))
}

func TestTokenService_Issue_ExpiryIsOneHour(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := fixedClock("secret", &now)

	token, err := svc.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	parsed := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, parsed)
	require.NoError(t, err)

	iat, err := parsed.GetIssuedAt()
	require.NoError(t, err)
	exp, err := parsed.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), iat.Unix())
	assert.Equal(t, int64(3600), exp.Unix()-iat.Unix())
}

func TestTokenService_Issue_IgnoresReservedClaims(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := fixedClock("secret", &now)

	token, err := svc.Issue(map[string]any{
		"email": "alice@example.com",
		"exp":   now.Add(24 * time.Hour).Unix(),
		"jti":   "client-chosen",
	})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.True(t, now.Add(time.Hour).Equal(claims.ExpiresAt), "exp must not come from the payload")
	assert.NotEqual(t, "client-chosen", claims.ID)
}

func TestTokenService_Issue_RequiresEmail(t *testing.T) {
	svc := NewTokenService("secret")

	for _, payload := range []map[string]any{
		{},
		{"email": ""},
		{"email": "   "},
		{"email": 42},
	} {
		_, err := svc.Issue(payload)
		assert.ErrorIs(t, err, domain.ErrMissingEmail, "payload %v", payload)
	}
}

func TestTokenService_Verify_Expiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := fixedClock("secret", &now)

	token, err := svc.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	now = now.Add(59 * time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err, "token must be valid before one hour")

	now = now.Add(2 * time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken, "token must be rejected after one hour")
}

func TestTokenService_Verify_Failures(t *testing.T) {
	svc := NewTokenService("secret")
	good, err := svc.Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	other, err := NewTokenService("other-secret").Issue(map[string]any{"email": "alice@example.com"})
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@example.com",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":         "not-a-token",
		"wrong secret":    other,
		"tampered":        tampered,
		"missing email":   noEmail,
		"missing exp":     noExp,
		"wrong algorithm": hs512,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestTokenService_Verify_Empty(t *testing.T) {
	_, err := NewTokenService("secret").Verify("")
	assert.ErrorIs(t, err, domain.ErrMissingToken)
}
