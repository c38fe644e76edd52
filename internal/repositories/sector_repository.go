package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/motix/motix/internal/models"
)

type sectorRepo struct{ db DB }

func NewSectorRepository(db DB) SectorRepository { return &sectorRepo{db: db} }

/* ---------- Create ---------- */

func (r *sectorRepo) Create(ctx context.Context, s *models.Sector) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sectors (id, code) VALUES ($1,$2)
	`, s.ID, s.Code)
	return err
}

/* ---------- Reads ---------- */

func (r *sectorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Sector, error) {
	row := r.db.QueryRow(ctx, baseSelectSector()+" WHERE id=$1", id)
	return scanSector(row)
}

func (r *sectorRepo) List(ctx context.Context, limit, offset int) ([]models.Sector, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sectors`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, baseSelectSector()+" ORDER BY code, id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.Sector
	for rows.Next() {
		s, err := scanSector(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *s)
	}
	return out, total, rows.Err()
}

func (r *sectorRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sectors WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

/* ---------- Update / Delete ---------- */

func (r *sectorRepo) Update(ctx context.Context, s *models.Sector) error {
	_, err := r.db.Exec(ctx, `UPDATE sectors SET code=$1 WHERE id=$2`, s.Code, s.ID)
	return err
}

// Delete relies on ON DELETE CASCADE (db/schema.sql) to remove dependent
// motorcycles and movements.
func (r *sectorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sectors WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectSector() string {
	return `
		SELECT id,code
		FROM sectors`
}

func scanSector(row pgx.Row) (*models.Sector, error) {
	var s models.Sector
	if err := row.Scan(&s.ID, &s.Code); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
