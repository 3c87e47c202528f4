package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-care-insights/internal/domain/pets"
)

// Schema mínimo que espera PetsRepo. age/weight son TEXT porque el document
// store acepta número o texto libre; el motor los interpreta con defaults.
const PetsSchema = `
CREATE TABLE IF NOT EXISTS pets (
	id            TEXT PRIMARY KEY,
	owner_user_id TEXT NOT NULL,
	name          TEXT NOT NULL,
	category      TEXT NOT NULL,
	breed         TEXT NOT NULL DEFAULT '',
	age           TEXT NOT NULL DEFAULT '',
	weight        TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS pets_owner_idx ON pets (owner_user_id, created_at);
`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id,
			name, category, breed,
			age, weight,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Category,
		p.Breed,
		p.Age,
		p.Weight,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

const selectPet = `
	SELECT
		id, owner_user_id,
		name, category, breed,
		age, weight,
		created_at, updated_at
	FROM pets
`

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Category,
		&p.Breed,
		&p.Age,
		&p.Weight,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	p, err := scanPet(r.db.QueryRowContext(ctx, selectPet+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []pets.Pet{}, nil
	}

	rows, err := r.db.QueryContext(ctx, selectPet+`
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
