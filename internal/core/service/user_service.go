package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
	"github.com/techhunt/api/internal/infrastructure/metrics"
)

// passwordField is the profile key whose value is stored as a bcrypt hash.
const passwordField = "password"

// profileReserved are payload keys owned by the server, never by the client.
var profileReserved = map[string]struct{}{
	"_id":   {},
	"email": {},
	"role":  {},
}

// UserService implements registration and role management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register inserts a new user built from profile. An existing email yields
// domain.ErrUserExists and no write happens.
func (s *UserService) Register(ctx context.Context, profile map[string]any) (*domain.InsertResult, error) {
	email, _ := profile["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.ErrMissingEmail
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		metrics.UsersRegisteredTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUserExists
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	user := &domain.User{Email: email, Profile: make(map[string]any, len(profile))}
	for k, v := range profile {
		if _, reserved := profileReserved[k]; reserved {
			continue
		}
		user.Profile[k] = v
	}
	if pw, ok := user.Profile[passwordField].(string); ok && pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("register: hash password: %w", err)
		}
		user.Profile[passwordField] = string(hash)
	}

	res, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.UsersRegisteredTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("email", email).Str("user_id", res.InsertedID).Msg("user registered")
	return res, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("role check: %w", err)
	}
	return user.HasRole(role), nil
}

// GrantRole sets the user's role. Granting a role the user already holds
// succeeds with ModifiedCount 0.
func (s *UserService) GrantRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	res, err := s.repo.SetRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	metrics.RoleGrantsTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().Str("user_id", id).Str("role", string(role)).Int64("matched", res.MatchedCount).Msg("role granted")
	return res, nil
}

// Delete removes a user by id. A missing id is not an error.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Int64("deleted", res.DeletedCount).Msg("user deleted")
	return res, nil
}
