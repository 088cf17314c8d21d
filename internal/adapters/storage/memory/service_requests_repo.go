package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-center/internal/domain/servicerequests"
)

type ServiceRequestRepo struct {
	mu   sync.RWMutex
	byID map[string]servicerequests.Request

	pets  *PetRepo
	users *UserRepo
}

func NewServiceRequestRepo(pets *PetRepo, users *UserRepo) *ServiceRequestRepo {
	return &ServiceRequestRepo{
		byID:  make(map[string]servicerequests.Request),
		pets:  pets,
		users: users,
	}
}

func (r *ServiceRequestRepo) Create(ctx context.Context, req servicerequests.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(req.ID) == "" {
		return errors.New("request id required")
	}
	if _, exists := r.byID[req.ID]; exists {
		return errors.New("request already exists")
	}
	r.byID[req.ID] = req
	return nil
}

func (r *ServiceRequestRepo) ListViews(ctx context.Context) ([]servicerequests.RequestView, error) {
	r.mu.RLock()
	items := make([]servicerequests.Request, 0, len(r.byID))
	for _, req := range r.byID {
		items = append(items, req)
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	out := make([]servicerequests.RequestView, 0, len(items))
	for _, req := range items {
		out = append(out, servicerequests.RequestView{
			Request:  req,
			PetName:  r.pets.nameOf(req.PetID),
			UserName: r.users.nameOf(req.UserID),
		})
	}
	return out, nil
}
