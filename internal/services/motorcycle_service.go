package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/motix/motix/internal/dtos"
	"github.com/motix/motix/internal/models"
	"github.com/motix/motix/internal/repositories"
	"github.com/motix/motix/internal/utils"
)

type MotorcycleService interface {
	List(ctx context.Context, paging dtos.PagingParams) ([]models.Motorcycle, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error)
	Create(ctx context.Context, req dtos.CreateMotorcycleRequest) (*models.Motorcycle, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdateMotorcycleRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type motorcycleService struct {
	repo    repositories.MotorcycleRepository
	sectors repositories.SectorRepository
}

func NewMotorcycleService(repo repositories.MotorcycleRepository, sectors repositories.SectorRepository) MotorcycleService {
	return &motorcycleService{repo: repo, sectors: sectors}
}

// NormalizePlate trims and upper-cases a plate for storage.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *motorcycleService) List(ctx context.Context, paging dtos.PagingParams) ([]models.Motorcycle, int, error) {
	return s.repo.List(ctx, paging.Limit(), paging.Offset())
}

func (s *motorcycleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Motorcycle, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, utils.NewAppError(http.StatusNotFound, "motorcycle not found", utils.ErrMotorcycleNotFound)
	}
	return m, nil
}

func (s *motorcycleService) Create(ctx context.Context, req dtos.CreateMotorcycleRequest) (*models.Motorcycle, error) {
	plate := NormalizePlate(req.Plate)
	if plate == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "plate is required", nil)
	}
	if req.SectorID == uuid.Nil {
		return nil, utils.NewAppError(http.StatusBadRequest, "sectorId is required", nil)
	}

	if err := s.requireSector(ctx, req.SectorID); err != nil {
		return nil, err
	}

	m := &models.Motorcycle{
		ID:       uuid.New(),
		Plate:    plate,
		SectorID: req.SectorID,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrSectorRefMissing.Error(), err)
		}
		return nil, err
	}
	return m, nil
}

// Update applies partial-tolerant PUT semantics: blank plate keeps the
// stored plate, zero sectorId keeps the stored sector.
func (s *motorcycleService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateMotorcycleRequest) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return utils.NewAppError(http.StatusNotFound, "motorcycle not found", utils.ErrMotorcycleNotFound)
	}

	if plate := NormalizePlate(req.Plate); plate != "" {
		m.Plate = plate
	}
	if req.SectorID != uuid.Nil {
		if err := s.requireSector(ctx, req.SectorID); err != nil {
			return err
		}
		m.SectorID = req.SectorID
	}

	if err := s.repo.Update(ctx, m); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return utils.NewAppError(http.StatusBadRequest, utils.ErrSectorRefMissing.Error(), err)
		}
		return err
	}
	return nil
}

func (s *motorcycleService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NewAppError(http.StatusNotFound, "motorcycle not found", utils.ErrMotorcycleNotFound)
	}
	return s.repo.Delete(ctx, id)
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

// requireSector pre-checks the FK explicitly: some deployment targets (the
// in-memory store) enforce no constraints, and a 400 beats a raw 23503.
func (s *motorcycleService) requireSector(ctx context.Context, sectorID uuid.UUID) error {
	exists, err := s.sectors.Exists(ctx, sectorID)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NewAppError(http.StatusBadRequest, utils.ErrSectorRefMissing.Error(), utils.ErrSectorRefMissing)
	}
	return nil
}
