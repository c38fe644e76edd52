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

type SectorService interface {
	List(ctx context.Context, paging dtos.PagingParams) ([]models.Sector, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sector, error)
	Create(ctx context.Context, code string) (*models.Sector, error)
	Update(ctx context.Context, id uuid.UUID, code string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sectorService struct {
	repo repositories.SectorRepository
}

func NewSectorService(repo repositories.SectorRepository) SectorService {
	return &sectorService{repo: repo}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *sectorService) List(ctx context.Context, paging dtos.PagingParams) ([]models.Sector, int, error) {
	return s.repo.List(ctx, paging.Limit(), paging.Offset())
}

func (s *sectorService) GetByID(ctx context.Context, id uuid.UUID) (*models.Sector, error) {
	sec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, utils.NewAppError(http.StatusNotFound, "sector not found", utils.ErrSectorNotFound)
	}
	return sec, nil
}

func (s *sectorService) Create(ctx context.Context, code string) (*models.Sector, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "code is required", nil)
	}

	sec := &models.Sector{
		ID:   uuid.New(),
		Code: code,
	}
	if err := s.repo.Create(ctx, sec); err != nil {
		return nil, err
	}
	return sec, nil
}

func (s *sectorService) Update(ctx context.Context, id uuid.UUID, code string) error {
	sec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sec == nil {
		return utils.NewAppError(http.StatusNotFound, "sector not found", utils.ErrSectorNotFound)
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return utils.NewAppError(http.StatusBadRequest, "code is required", nil)
	}

	sec.Code = code
	return s.repo.Update(ctx, sec)
}

// Delete removes the sector; the store cascades to dependent motorcycles
// and movements. Missing sectors are reported, unlike movement deletes.
func (s *sectorService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return utils.NewAppError(http.StatusNotFound, "sector not found", utils.ErrSectorNotFound)
	}
	return s.repo.Delete(ctx, id)
}
