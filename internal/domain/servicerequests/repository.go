package servicerequests

import "context"

type Repository interface {
	Create(ctx context.Context, req Request) error
	ListViews(ctx context.Context) ([]RequestView, error)
}
