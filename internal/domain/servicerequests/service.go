package servicerequests

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

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
	Type     string
	Date     time.Time
	Location string
	PetID    string
}

// Create registra el pedido. userID viene de la sesión; el handler ya
// verificó que la mascota exista.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Request, error) {
	if strings.TrimSpace(userID) == "" {
		return Request{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Location) == "" || strings.TrimSpace(in.PetID) == "" {
		return Request{}, ErrInvalidInput
	}
	if in.Date.IsZero() {
		return Request{}, ErrInvalidInput
	}

	req := Request{
		ID:        uuid.NewString(),
		Type:      strings.TrimSpace(in.Type),
		Date:      in.Date,
		Location:  strings.TrimSpace(in.Location),
		PetID:     in.PetID,
		UserID:    userID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Service) ListViews(ctx context.Context) ([]RequestView, error) {
	return s.repo.ListViews(ctx)
}
