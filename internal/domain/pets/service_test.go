package pets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetView(ctx context.Context, id string) (PetView, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return PetView{}, err
	}
	return PetView{Pet: p}, nil
}

func (r *testRepo) ListViews(ctx context.Context) ([]PetView, error) {
	out := make([]PetView, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, PetView{Pet: p})
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func strPtr(s string) *string { return &s }

func TestApplyPatch_PreservesImageWhenNil(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := Pet{
		ID: "p1", OwnerID: "u1",
		Name: "Rex", Type: "Dog", Breed: "Labrador",
		Image: "/uploads/123-rex.png",
	}

	out, err := applyPatch(current, UpdateInput{Name: strPtr("Rexy")}, now)
	require.NoError(t, err)

	assert.Equal(t, "Rexy", out.Name)
	assert.Equal(t, "/uploads/123-rex.png", out.Image, "sin archivo nuevo, el path se preserva")
	assert.Equal(t, now, out.UpdatedAt)
}

func TestApplyPatch_ReplacesImageWhenSet(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	current := Pet{ID: "p1", OwnerID: "u1", Name: "Rex", Type: "Dog", Breed: "Labrador", Image: "/uploads/old.png"}

	out, err := applyPatch(current, UpdateInput{Image: strPtr("/uploads/new.png")}, now)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/new.png", out.Image)
	assert.Equal(t, "Rex", out.Name, "los campos no tocados quedan igual")
}

func TestApplyPatch_RejectsEmptyRequiredField(t *testing.T) {
	current := Pet{ID: "p1", Name: "Rex", Type: "Dog", Breed: "Labrador"}

	_, err := applyPatch(current, UpdateInput{Name: strPtr("   ")}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_RequiresOwnerAndFields(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "", CreateInput{Name: "Rex", Type: "Dog", Breed: "Lab"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), "u1", CreateInput{Name: "Rex", Type: "", Breed: "Lab"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	p, err := svc.Create(context.Background(), "u1", CreateInput{Name: " Rex ", Type: "Dog", Breed: "Lab"})
	require.NoError(t, err)
	assert.Equal(t, "u1", p.OwnerID)
	assert.Equal(t, "Rex", p.Name)
	assert.Empty(t, p.Image)
}

func TestService_Update_OnlyOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "u1", CreateInput{Name: "Rex", Type: "Dog", Breed: "Lab"})
	require.NoError(t, err)

	// Otro usuario: la mascota "no existe" para él.
	_, err = svc.Update(context.Background(), p.ID, "u2", UpdateInput{Name: strPtr("Stolen")})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(context.Background(), p.ID, "u1", UpdateInput{Name: strPtr("Rexy")})
	require.NoError(t, err)
	assert.Equal(t, "Rexy", updated.Name)

	stored, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rexy", stored.Name)
}
