package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	GetView(ctx context.Context, id string) (PetView, error)
	ListViews(ctx context.Context) ([]PetView, error)
}
