package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/infrastructure/db/memory"
)

// failingUserRepo fails every call with err.
type failingUserRepo struct {
	err     error
	created int
}

func (r *failingUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, r.err
}

func (r *failingUserRepo) Create(context.Context, *domain.User) (*domain.InsertResult, error) {
	r.created++
	return nil, r.err
}

func (r *failingUserRepo) List(context.Context) ([]*domain.User, error) { return nil, r.err }

func (r *failingUserRepo) SetRole(context.Context, string, domain.Role) (*domain.UpdateResult, error) {
	return nil, r.err
}

func (r *failingUserRepo) Delete(context.Context, string) (*domain.DeleteResult, error) {
	return nil, r.err
}

func newUserService(t *testing.T) (*UserService, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	return NewUserService(repo, zerolog.Nop()), repo
}

func TestUserService_Register_Success(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, map[string]any{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.InsertedID)

	user, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, res.InsertedID, user.ID)
	assert.Equal(t, "Alice", user.Profile["name"])
	assert.Equal(t, domain.RoleNone, user.Role)

	hash, ok := user.Profile["password"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}

func TestUserService_Register_IgnoresRoleAndID(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, map[string]any{
		"email": "mallory@example.com",
		"role":  "admin",
		"_id":   "chosen-id",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "chosen-id", res.InsertedID)

	user, err := repo.FindByEmail(ctx, "mallory@example.com")
	require.NoError(t, err)
	assert.False(t, user.HasRole(domain.RoleAdmin))
	assert.NotContains(t, user.Profile, "role")
	assert.NotContains(t, user.Profile, "_id")
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, map[string]any{"email": "bob@example.com", "name": "first"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, map[string]any{"email": "bob@example.com", "name": "second"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "first", users[0].Profile["name"])
}

func TestUserService_Register_ConcurrentDuplicates(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(ctx, map[string]any{"email": "race@example.com"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, domain.ErrUserExists):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserService_Register_MissingEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register(context.Background(), map[string]any{"name": "nobody"})
	assert.ErrorIs(t, err, domain.ErrMissingEmail)
}

func TestUserService_Register_LookupFailure(t *testing.T) {
	boom := errors.New("socket closed")
	repo := &failingUserRepo{err: boom}
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), map[string]any{"email": "alice@example.com"})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, repo.created, "no insert after a failed lookup")
}

func TestUserService_HasRole(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, map[string]any{"email": "mod@example.com"})
	require.NoError(t, err)
	_, err = repo.SetRole(ctx, res.InsertedID, domain.RoleModerator)
	require.NoError(t, err)

	ok, err := svc.HasRole(ctx, "mod@example.com", domain.RoleModerator)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasRole(ctx, "mod@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasRole(ctx, "ghost@example.com", domain.RoleAdmin)
	require.NoError(t, err, "unknown email is not an error")
	assert.False(t, ok)
}

func TestUserService_HasRole_StoreFailure(t *testing.T) {
	boom := errors.New("socket closed")
	svc := NewUserService(&failingUserRepo{err: boom}, zerolog.Nop())

	_, err := svc.HasRole(context.Background(), "alice@example.com", domain.RoleAdmin)
	assert.ErrorIs(t, err, boom)
}

func TestUserService_GrantRole_Idempotent(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, map[string]any{"email": "carol@example.com"})
	require.NoError(t, err)

	first, err := svc.GrantRole(ctx, res.InsertedID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, first)

	second, err := svc.GrantRole(ctx, res.InsertedID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, second)

	user, err := repo.FindByEmail(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestUserService_GrantRole_Validation(t *testing.T) {
	svc, _ := newUserService(t)

	for _, role := range []domain.Role{domain.RoleNone, "superuser"} {
		_, err := svc.GrantRole(context.Background(), "any", role)
		assert.ErrorIs(t, err, domain.ErrInvalidRole, "role %q", role)
	}
}

func TestUserService_GrantRole_UnknownID(t *testing.T) {
	svc, _ := newUserService(t)

	res, err := svc.GrantRole(context.Background(), "missing", domain.RoleModerator)
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)
}

func TestUserService_Delete(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, map[string]any{"email": "dave@example.com"})
	require.NoError(t, err)

	del, err := svc.Delete(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	again, err := svc.Delete(ctx, res.InsertedID)
	require.NoError(t, err, "deleting a missing user succeeds")
	assert.Zero(t, again.DeletedCount)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
