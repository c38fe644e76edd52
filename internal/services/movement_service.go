package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/motix/motix/internal/dtos"
	"github.com/motix/motix/internal/models"
	"github.com/motix/motix/internal/repositories"
	"github.com/motix/motix/internal/utils"
)

type MovementService interface {
	List(ctx context.Context, paging dtos.PagingParams) ([]models.Movement, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Movement, error)
	Create(ctx context.Context, req dtos.CreateMovementRequest) (*models.Movement, error)
	// Delete is idempotent: removing an absent movement is a success.
	Delete(ctx context.Context, id uuid.UUID) error
}

type movementService struct {
	repo        repositories.MovementRepository
	motorcycles repositories.MotorcycleRepository
	sectors     repositories.SectorRepository
	now         func() time.Time
}

func NewMovementService(
	repo repositories.MovementRepository,
	motorcycles repositories.MotorcycleRepository,
	sectors repositories.SectorRepository,
) MovementService {
	return &movementService{
		repo:        repo,
		motorcycles: motorcycles,
		sectors:     sectors,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *movementService) List(ctx context.Context, paging dtos.PagingParams) ([]models.Movement, int, error) {
	return s.repo.List(ctx, paging.Limit(), paging.Offset())
}

func (s *movementService) GetByID(ctx context.Context, id uuid.UUID) (*models.Movement, error) {
	mv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mv == nil {
		return nil, utils.NewAppError(http.StatusNotFound, "movement not found", utils.ErrMovementNotFound)
	}
	return mv, nil
}

func (s *movementService) Create(ctx context.Context, req dtos.CreateMovementRequest) (*models.Movement, error) {
	if req.MotorcycleID == uuid.Nil {
		return nil, utils.NewAppError(http.StatusBadRequest, "motorcycleId is required", nil)
	}
	if req.SectorID == uuid.Nil {
		return nil, utils.NewAppError(http.StatusBadRequest, "sectorId is required", nil)
	}

	exists, err := s.motorcycles.Exists(ctx, req.MotorcycleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrMotorcycleRefMissing.Error(), utils.ErrMotorcycleRefMissing)
	}
	exists, err = s.sectors.Exists(ctx, req.SectorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrSectorRefMissing.Error(), utils.ErrSectorRefMissing)
	}

	mv := &models.Movement{
		ID:           uuid.New(),
		MotorcycleID: req.MotorcycleID,
		SectorID:     req.SectorID,
		OccurredAt:   s.now(),
	}
	if err := s.repo.Create(ctx, mv); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.NewAppError(http.StatusBadRequest, "motorcycleId or sectorId does not exist", err)
		}
		return nil, err
	}
	return mv, nil
}

func (s *movementService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
