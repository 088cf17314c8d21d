package postgres

import (
	"context"
	"database/sql"

	"pet-care-center/internal/domain/servicerequests"
)

type ServiceRequestsRepo struct {
	db *sql.DB
}

func NewServiceRequestsRepo(db *sql.DB) *ServiceRequestsRepo {
	return &ServiceRequestsRepo{db: db}
}

func (r *ServiceRequestsRepo) Create(ctx context.Context, req servicerequests.Request) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO service_requests (id, type, date, location, pet_id, user_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		req.ID,
		req.Type,
		req.Date,
		req.Location,
		req.PetID,
		req.UserID,
		req.CreatedAt,
	)
	return err
}

func (r *ServiceRequestsRepo) ListViews(ctx context.Context) ([]servicerequests.RequestView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sr.id, sr.type, sr.date, sr.location, sr.pet_id, sr.user_id,
		       sr.created_at, p.name, u.name
		FROM service_requests sr
		JOIN pets p ON p.id = sr.pet_id
		JOIN users u ON u.id = sr.user_id
		ORDER BY sr.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]servicerequests.RequestView, 0)
	for rows.Next() {
		var rv servicerequests.RequestView
		if err := rows.Scan(
			&rv.ID,
			&rv.Type,
			&rv.Date,
			&rv.Location,
			&rv.PetID,
			&rv.UserID,
			&rv.CreatedAt,
			&rv.PetName,
			&rv.UserName,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}

	return out, rows.Err()
}
