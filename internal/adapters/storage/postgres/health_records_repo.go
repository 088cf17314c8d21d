package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-center/internal/domain/healthrecords"
)

type HealthRecordsRepo struct {
	db *sql.DB
}

func NewHealthRecordsRepo(db *sql.DB) *HealthRecordsRepo {
	return &HealthRecordsRepo{db: db}
}

func (r *HealthRecordsRepo) Create(ctx context.Context, rec healthrecords.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (id, pet_id, visit_date, diagnosis, treatment, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		rec.ID,
		rec.PetID,
		rec.VisitDate,
		rec.Diagnosis,
		rec.Treatment,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *HealthRecordsRepo) Update(ctx context.Context, rec healthrecords.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE health_records
		SET visit_date = $2, diagnosis = $3, treatment = $4, updated_at = $5
		WHERE id = $1
	`,
		rec.ID,
		rec.VisitDate,
		rec.Diagnosis,
		rec.Treatment,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return healthrecords.ErrNotFound
	}
	return nil
}

func (r *HealthRecordsRepo) GetByID(ctx context.Context, id string) (healthrecords.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return healthrecords.Record{}, healthrecords.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, visit_date, diagnosis, treatment, created_at, updated_at
		FROM health_records
		WHERE id = $1
	`, id)

	var rec healthrecords.Record
	if err := row.Scan(
		&rec.ID,
		&rec.PetID,
		&rec.VisitDate,
		&rec.Diagnosis,
		&rec.Treatment,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return healthrecords.Record{}, healthrecords.ErrNotFound
		}
		return healthrecords.Record{}, err
	}

	return rec, nil
}

func (r *HealthRecordsRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Record, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, visit_date, diagnosis, treatment, created_at, updated_at
		FROM health_records
		WHERE pet_id = $1
		ORDER BY visit_date ASC, created_at ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthrecords.Record, 0)
	for rows.Next() {
		var rec healthrecords.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.PetID,
			&rec.VisitDate,
			&rec.Diagnosis,
			&rec.Treatment,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}
