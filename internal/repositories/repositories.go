package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/motix/motix/internal/models"
)

/* ------------------------------------------------------------------
   Store interfaces

   Get* methods return (nil, nil) when no row matches; List methods
   return the requested page plus the total unfiltered count.
------------------------------------------------------------------ */

type SectorRepository interface {
	Create(ctx context.Context, s *models.Sector) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sector, error)
	List(ctx context.Context, limit, offset int) ([]models.Sector, int, error)
	Update(ctx context.Context, s *models.Sector) error
	// Delete cascades to dependent motorcycles and movements.
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type MotorcycleRepository interface {
	Create(ctx context.Context, m *models.Motorcycle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error)
	List(ctx context.Context, limit, offset int) ([]models.Motorcycle, int, error)
	Update(ctx context.Context, m *models.Motorcycle) error
	// Delete cascades to dependent movements.
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type MovementRepository interface {
	Create(ctx context.Context, mv *models.Movement) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Movement, error)
	List(ctx context.Context, limit, offset int) ([]models.Movement, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store bundles the three repositories behind a single construction point
// so wiring can swap the Postgres and in-memory implementations.
type Store interface {
	Sectors() SectorRepository
	Motorcycles() MotorcycleRepository
	Movements() MovementRepository
}
