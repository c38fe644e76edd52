package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/motix/motix/internal/models"
)

type motorcycleRepo struct{ db DB }

func NewMotorcycleRepository(db DB) MotorcycleRepository { return &motorcycleRepo{db: db} }

/* ---------- Create ---------- */

func (r *motorcycleRepo) Create(ctx context.Context, m *models.Motorcycle) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO motorcycles (id, plate, sector_id) VALUES ($1,$2,$3)
	`, m.ID, m.Plate, m.SectorID)
	return err
}

/* ---------- Reads ---------- */

func (r *motorcycleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error) {
	row := r.db.QueryRow(ctx, baseSelectMotorcycle()+" WHERE id=$1", id)
	return scanMotorcycle(row)
}

func (r *motorcycleRepo) List(ctx context.Context, limit, offset int) ([]models.Motorcycle, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM motorcycles`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, baseSelectMotorcycle()+" ORDER BY plate, id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.Motorcycle
	for rows.Next() {
		m, err := scanMotorcycle(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	return out, total, rows.Err()
}

func (r *motorcycleRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM motorcycles WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

/* ---------- Update / Delete ---------- */

func (r *motorcycleRepo) Update(ctx context.Context, m *models.Motorcycle) error {
	_, err := r.db.Exec(ctx, `
		UPDATE motorcycles SET plate=$1, sector_id=$2 WHERE id=$3
	`, m.Plate, m.SectorID, m.ID)
	return err
}

// Delete relies on ON DELETE CASCADE to remove dependent movements.
func (r *motorcycleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM motorcycles WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectMotorcycle() string {
	return `
		SELECT id,plate,sector_id
		FROM motorcycles`
}

func scanMotorcycle(row pgx.Row) (*models.Motorcycle, error) {
	var m models.Motorcycle
	if err := row.Scan(&m.ID, &m.Plate, &m.SectorID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
