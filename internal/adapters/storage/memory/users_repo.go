package memory

import (
	"context"
	"sync"

	"family-care/internal/domain/users"
)

type userRepo struct {
	mu     sync.RWMutex
	items  []users.User
	nextID int64
}

func NewUserRepo() users.Repository {
	return &userRepo{
		items: make([]users.User, 0),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	u.ID = r.nextID
	r.items = append(r.items, u)
	return u, nil
}

func (r *userRepo) ListByEmail(ctx context.Context, email string) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0)
	for _, u := range r.items {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *userRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]users.User, 0, len(r.items))
	for _, u := range r.items {
		if u.ID != id {
			next = append(next, u)
		}
	}
	removed := len(next) != len(r.items)
	r.items = next
	return removed, nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
