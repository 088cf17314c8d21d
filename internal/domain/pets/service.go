package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Type  string
	Breed string
	Image string // path devuelto por el sink; "" = sin foto
}

// Create registra la mascota. El owner viene siempre de la sesión del
// request, nunca del form.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Breed) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(in.Name),
		Type:      strings.TrimSpace(in.Type),
		Breed:     strings.TrimSpace(in.Breed),
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetView(ctx context.Context, id string) (PetView, error) {
	return s.repo.GetView(ctx, id)
}

func (s *Service) ListViews(ctx context.Context) ([]PetView, error) {
	return s.repo.ListViews(ctx)
}

// UpdateInput es un patch real: nil = no tocar el campo. En particular
// Image nil preserva la foto guardada (edit sin subir archivo nuevo).
type UpdateInput struct {
	Name  *string
	Type  *string
	Breed *string
	Image *string
}

// Update aplica el patch sobre la fila existente. Solo el dueño puede
// editar; para otros usuarios la mascota "no existe" (no filtramos ids).
func (s *Service) Update(ctx context.Context, id, actorID string, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if current.OwnerID != actorID {
		return Pet{}, ErrNotFound
	}

	updated, err := applyPatch(current, in, s.now())
	if err != nil {
		return Pet{}, err
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		return Pet{}, err
	}
	return updated, nil
}

// applyPatch es la función pura {fila existente, patch} -> fila nueva.
// Campos nil quedan como estaban; strings vacíos en campos requeridos son
// inválidos (un form edit siempre manda name/type/breed completos).
func applyPatch(current Pet, in UpdateInput, now time.Time) (Pet, error) {
	out := current

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		out.Name = v
	}
	if in.Type != nil {
		v := strings.TrimSpace(*in.Type)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		out.Type = v
	}
	if in.Breed != nil {
		v := strings.TrimSpace(*in.Breed)
		if v == "" {
			return Pet{}, ErrInvalidInput
		}
		out.Breed = v
	}
	if in.Image != nil {
		out.Image = *in.Image
	}

	out.UpdatedAt = now
	return out, nil
}
