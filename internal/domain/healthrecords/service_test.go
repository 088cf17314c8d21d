package healthrecords

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Record
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Record{}}
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Record, error) {
	out := make([]Record, 0)
	for _, rec := range r.byID {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func TestService_CreateUpdateRoundTrip(t *testing.T) {
	svc := NewService(newTestRepo())

	visit := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	rec, err := svc.Create(context.Background(), "pet-1", Input{
		VisitDate: visit,
		Diagnosis: " Otitis ",
		Treatment: "Drops",
	})
	require.NoError(t, err)
	assert.Equal(t, "pet-1", rec.PetID)
	assert.Equal(t, "Otitis", rec.Diagnosis, "los campos se trimean")

	later := visit.AddDate(0, 0, 5)
	updated, err := svc.Update(context.Background(), rec.ID, Input{
		VisitDate: later,
		Diagnosis: "Otitis resolved",
		Treatment: "None",
	})
	require.NoError(t, err)
	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, later, updated.VisitDate)

	got, err := svc.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Otitis resolved", got.Diagnosis)
}

func TestService_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "pet-1", Input{
		Diagnosis: "Otitis", Treatment: "Drops", // sin fecha
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "", Input{
		VisitDate: time.Now(), Diagnosis: "Otitis", Treatment: "Drops",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), "missing", Input{
		VisitDate: time.Now(), Diagnosis: "Otitis", Treatment: "Drops",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
