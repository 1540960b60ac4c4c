package memory

import (
	"context"
	"sync"

	"github.com/techhunt/api/internal/core/domain"
)

type UserRepository struct {
	users *collection[domain.User]
	// create holds the email check and the insert together, standing in for
	// the unique index of the mongo implementation.
	create sync.Mutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection[domain.User]()}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	var found *domain.User
	r.users.each(func(_ string, u *domain.User) bool {
		if u.Email == email {
			found = cloneUser(u)
			return false
		}
		return true
	})
	if found == nil {
		return nil, domain.ErrUserNotFound
	}
	return found, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.InsertResult, error) {
	r.create.Lock()
	defer r.create.Unlock()

	if _, err := r.FindByEmail(ctx, user.Email); err == nil {
		return nil, domain.ErrUserExists
	}
	id := r.users.insert(func(id string) *domain.User {
		doc := cloneUser(user)
		doc.ID = id
		return doc
	})
	return &domain.InsertResult{InsertedID: id}, nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	out := []*domain.User{}
	r.users.each(func(_ string, u *domain.User) bool {
		out = append(out, cloneUser(u))
		return true
	})
	return out, nil
}

func (r *UserRepository) SetRole(_ context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	res := &domain.UpdateResult{}
	ok := r.users.update(id, func(u *domain.User) {
		res.MatchedCount = 1
		if u.Role != role {
			u.Role = role
			res.ModifiedCount = 1
		}
	})
	if !ok {
		return &domain.UpdateResult{}, nil
	}
	return res, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	if r.users.remove(id) {
		return &domain.DeleteResult{DeletedCount: 1}, nil
	}
	return &domain.DeleteResult{}, nil
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Profile = cloneFields(u.Profile)
	return &c
}
