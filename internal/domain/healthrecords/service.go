package healthrecords

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("health record not found")
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

type Input struct {
	VisitDate time.Time
	Diagnosis string
	Treatment string
}

func (in Input) validate() error {
	if in.VisitDate.IsZero() {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.Diagnosis) == "" || strings.TrimSpace(in.Treatment) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Create agrega una visita. petID viene del path del request; que la
// mascota exista lo valida el handler contra el servicio de pets.
func (s *Service) Create(ctx context.Context, petID string, in Input) (Record, error) {
	if strings.TrimSpace(petID) == "" {
		return Record{}, ErrInvalidInput
	}
	if err := in.validate(); err != nil {
		return Record{}, err
	}

	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		PetID:     petID,
		VisitDate: in.VisitDate,
		Diagnosis: strings.TrimSpace(in.Diagnosis),
		Treatment: strings.TrimSpace(in.Treatment),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Update reemplaza los campos editables completos (el form de edición
// siempre manda la visita entera, no es un patch).
func (s *Service) Update(ctx context.Context, id string, in Input) (Record, error) {
	if err := in.validate(); err != nil {
		return Record{}, err
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	rec.VisitDate = in.VisitDate
	rec.Diagnosis = strings.TrimSpace(in.Diagnosis)
	rec.Treatment = strings.TrimSpace(in.Treatment)
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Record, error) {
	return s.repo.ListByPet(ctx, petID)
}
