package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-center/internal/domain/healthrecords"
)

type HealthRecordRepo struct {
	mu   sync.RWMutex
	byID map[string]healthrecords.Record
}

func NewHealthRecordRepo() *HealthRecordRepo {
	return &HealthRecordRepo{
		byID: make(map[string]healthrecords.Record),
	}
}

func (r *HealthRecordRepo) Create(ctx context.Context, rec healthrecords.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *HealthRecordRepo) Update(ctx context.Context, rec healthrecords.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return healthrecords.ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *HealthRecordRepo) GetByID(ctx context.Context, id string) (healthrecords.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return healthrecords.Record{}, healthrecords.ErrNotFound
	}
	return rec, nil
}

func (r *HealthRecordRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]healthrecords.Record, 0)
	for _, rec := range r.byID {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].VisitDate.Equal(out[j].VisitDate) {
			return out[i].VisitDate.Before(out[j].VisitDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
