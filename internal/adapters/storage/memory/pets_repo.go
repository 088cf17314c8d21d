package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-center/internal/domain/pets"
)

type PetRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet

	users *UserRepo // para resolver nombres de dueño en las vistas
}

func NewPetRepo(users *UserRepo) *PetRepo {
	return &PetRepo{
		byID:  make(map[string]pets.Pet),
		users: users,
	}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *PetRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) GetView(ctx context.Context, id string) (pets.PetView, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return pets.PetView{}, err
	}
	return pets.PetView{Pet: p, OwnerName: r.users.nameOf(p.OwnerID)}, nil
}

func (r *PetRepo) ListViews(ctx context.Context) ([]pets.PetView, error) {
	r.mu.RLock()
	items := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		items = append(items, p)
	}
	r.mu.RUnlock()

	// Orden estable por created_at asc, como el ORDER BY del repo real.
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	out := make([]pets.PetView, 0, len(items))
	for _, p := range items {
		out = append(out, pets.PetView{Pet: p, OwnerName: r.users.nameOf(p.OwnerID)})
	}
	return out, nil
}

// nameOf resuelve el nombre de la mascota para el listado de requests.
func (r *PetRepo) nameOf(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.byID[id]; ok {
		return p.Name
	}
	return ""
}
