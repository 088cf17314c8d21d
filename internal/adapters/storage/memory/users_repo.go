// Package memory implementa los repos sobre mapas con mutex. Se usa en
// dev (sin DB_DSN) y en los tests end-to-end del router.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-care-center/internal/domain/users"
)

type UserRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID: make(map[string]users.User),
	}
}

func (r *UserRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	// Emula la unique constraint de email del store real.
	for _, other := range r.byID {
		if strings.EqualFold(other.Email, u.Email) {
			return errors.New("email already taken")
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

// nameOf resuelve el nombre para los "joins" de los otros repos.
func (r *UserRepo) nameOf(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.byID[id]; ok {
		return u.Name
	}
	return ""
}
