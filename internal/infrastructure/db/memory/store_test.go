package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/techhunt/api/internal/core/domain"
)

func TestCollection_InsertionOrder(t *testing.T) {
	c := newCollection[domain.Review]()
	var ids []string
	for _, room := range []string{"a", "b", "c"} {
		ids = append(ids, c.insert(func(id string) *domain.Review {
			return &domain.Review{ID: id, RoomID: room}
		}))
	}

	if !c.remove(ids[1]) {
		t.Fatalf("expected remove to succeed")
	}
	if c.remove(ids[1]) {
		t.Fatalf("second remove must report false")
	}

	var rooms []string
	c.each(func(_ string, r *domain.Review) bool {
		rooms = append(rooms, r.RoomID)
		return true
	})
	if len(rooms) != 2 || rooms[0] != "a" || rooms[1] != "c" {
		t.Fatalf("unexpected order: %v", rooms)
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.User{Email: "alice@example.com", Profile: map[string]any{"name": "Alice"}}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	u, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	u.Profile["name"] = "changed"
	u.Role = domain.RoleAdmin

	again, _ := repo.FindByEmail(ctx, "alice@example.com")
	if again.Profile["name"] != "Alice" || again.Role != domain.RoleNone {
		t.Fatalf("stored user was modified through a returned copy: %+v", again)
	}
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &domain.User{Email: "dup@example.com"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			} else if !errors.Is(err, domain.ErrUserExists) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Fatalf("expected exactly one insert, got %d", created)
	}
}

func TestUserRepository_SetRoleAndDelete(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	res, _ := repo.Create(ctx, &domain.User{Email: "bob@example.com"})

	upd, err := repo.SetRole(ctx, "missing", domain.RoleAdmin)
	if err != nil || upd.MatchedCount != 0 || upd.ModifiedCount != 0 {
		t.Fatalf("unexpected result for missing id: %+v %v", upd, err)
	}

	upd, _ = repo.SetRole(ctx, res.InsertedID, domain.RoleAdmin)
	if upd.MatchedCount != 1 || upd.ModifiedCount != 1 {
		t.Fatalf("unexpected first grant: %+v", upd)
	}
	upd, _ = repo.SetRole(ctx, res.InsertedID, domain.RoleAdmin)
	if upd.MatchedCount != 1 || upd.ModifiedCount != 0 {
		t.Fatalf("unexpected repeated grant: %+v", upd)
	}

	del, _ := repo.Delete(ctx, res.InsertedID)
	if del.DeletedCount != 1 {
		t.Fatalf("expected 1 deleted, got %d", del.DeletedCount)
	}
	if _, err := repo.FindByEmail(ctx, "bob@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProductRepository_SearchSkipLimit(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	for _, tags := range [][]string{{"Phone"}, {"laptop"}, {"SmartPhone", "5G"}, {"phone case"}} {
		repo.Seed(domain.Product{Tags: tags})
	}

	all, _ := repo.Search(ctx, "PHONE", 0, 20)
	if len(all) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(all))
	}

	page, _ := repo.Search(ctx, "phone", 1, 1)
	if len(page) != 1 || page[0].Tags[0] != "SmartPhone" {
		t.Fatalf("unexpected page: %+v", page)
	}

	everything, _ := repo.Search(ctx, "", 0, 20)
	if len(everything) != 4 {
		t.Fatalf("empty term must match all, got %d", len(everything))
	}
}
