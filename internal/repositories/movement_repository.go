package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/motix/motix/internal/models"
)

type movementRepo struct{ db DB }

func NewMovementRepository(db DB) MovementRepository { return &movementRepo{db: db} }

/* ---------- Create ---------- */

func (r *movementRepo) Create(ctx context.Context, mv *models.Movement) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO movements (id, motorcycle_id, sector_id, occurred_at)
		VALUES ($1,$2,$3,$4)
	`, mv.ID, mv.MotorcycleID, mv.SectorID, mv.OccurredAt)
	return err
}

/* ---------- Reads ---------- */

func (r *movementRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Movement, error) {
	row := r.db.QueryRow(ctx, baseSelectMovement()+" WHERE id=$1", id)
	return scanMovement(row)
}

// List returns movements newest first; the id tiebreak keeps page
// boundaries stable for equal timestamps.
func (r *movementRepo) List(ctx context.Context, limit, offset int) ([]models.Movement, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movements`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, baseSelectMovement()+" ORDER BY occurred_at DESC, id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.Movement
	for rows.Next() {
		mv, err := scanMovement(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *mv)
	}
	return out, total, rows.Err()
}

/* ---------- Delete ---------- */

func (r *movementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM movements WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectMovement() string {
	return `
		SELECT id,motorcycle_id,sector_id,occurred_at
		FROM movements`
}

func scanMovement(row pgx.Row) (*models.Movement, error) {
	var mv models.Movement
	if err := row.Scan(&mv.ID, &mv.MotorcycleID, &mv.SectorID, &mv.OccurredAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &mv, nil
}
