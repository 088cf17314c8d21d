package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-center/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, owner_id, name, type, breed, image, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Type,
		p.Breed,
		toNullString(p.Image),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// Update escribe la fila completa: el merge del patch (incluido preservar
// image) ya lo hizo el service, acá no hay SQL condicional.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, type = $3, breed = $4, image = $5, updated_at = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Type,
		p.Breed,
		toNullString(p.Image),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, type, breed, image, created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	var img sql.NullString
	if err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Type,
		&p.Breed,
		&img,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	p.Image = img.String

	return p, nil
}

func (r *PetsRepo) GetView(ctx context.Context, id string) (pets.PetView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.PetView{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.owner_id, p.name, p.type, p.breed, p.image,
		       p.created_at, p.updated_at, u.name
		FROM pets p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = $1
	`, id)

	var pv pets.PetView
	var img sql.NullString
	if err := row.Scan(
		&pv.ID,
		&pv.OwnerID,
		&pv.Name,
		&pv.Type,
		&pv.Breed,
		&img,
		&pv.CreatedAt,
		&pv.UpdatedAt,
		&pv.OwnerName,
	); err != nil {
		if err == sql.ErrNoRows {
			return pets.PetView{}, pets.ErrNotFound
		}
		return pets.PetView{}, err
	}
	pv.Image = img.String

	return pv, nil
}

func (r *PetsRepo) ListViews(ctx context.Context) ([]pets.PetView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.owner_id, p.name, p.type, p.breed, p.image,
		       p.created_at, p.updated_at, u.name
		FROM pets p
		JOIN users u ON u.id = p.owner_id
		ORDER BY p.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.PetView, 0)
	for rows.Next() {
		var pv pets.PetView
		var img sql.NullString
		if err := rows.Scan(
			&pv.ID,
			&pv.OwnerID,
			&pv.Name,
			&pv.Type,
			&pv.Breed,
			&img,
			&pv.CreatedAt,
			&pv.UpdatedAt,
			&pv.OwnerName,
		); err != nil {
			return nil, err
		}
		pv.Image = img.String
		out = append(out, pv)
	}

	return out, rows.Err()
}
