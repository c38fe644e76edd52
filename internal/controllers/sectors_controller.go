package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/motix/motix/internal/dtos"
	"github.com/motix/motix/internal/models"
	"github.com/motix/motix/internal/routes"
	"github.com/motix/motix/internal/services"
	"github.com/motix/motix/internal/utils"
)

type SectorsController struct {
	svc services.SectorService
}

func NewSectorsController(svc services.SectorService) *SectorsController {
	return &SectorsController{svc: svc}
}

func toSectorDTO(s models.Sector) dtos.SectorDTO {
	return dtos.SectorDTO{ID: s.ID, Code: s.Code}
}

func sectorResource(base string, s models.Sector) dtos.Resource[dtos.SectorDTO] {
	return dtos.Resource[dtos.SectorDTO]{
		Data:  toSectorDTO(s),
		Links: services.SectorLinks(base, s.ID),
	}
}

// -----------------------------------------------------------------------------
// GET /api/v1/sectors
// -----------------------------------------------------------------------------
func (c *SectorsController) List(w http.ResponseWriter, r *http.Request) {
	paging := parsePaging(r)
	sectors, total, err := c.svc.List(r.Context(), paging)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	base := utils.BaseURL(r)
	items := make([]dtos.Resource[dtos.SectorDTO], 0, len(sectors))
	for _, s := range sectors {
		items = append(items, sectorResource(base, s))
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPagedResult(items, paging, total))
}

// -----------------------------------------------------------------------------
// GET /api/v1/sectors/{id}
// -----------------------------------------------------------------------------
func (c *SectorsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondNotFound(w)
		return
	}
	s, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sectorResource(utils.BaseURL(r), *s))
}

// -----------------------------------------------------------------------------
// POST /api/v1/sectors
// -----------------------------------------------------------------------------
func (c *SectorsController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON payload", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, validationMessage(err), err)
		return
	}

	s, err := c.svc.Create(r.Context(), req.Code)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	w.Header().Set("Location", routes.Sectors+"/"+s.ID.String())
	utils.RespondWithJSON(w, http.StatusCreated, sectorResource(utils.BaseURL(r), *s))
}

// -----------------------------------------------------------------------------
// PUT /api/v1/sectors/{id}
// -----------------------------------------------------------------------------
func (c *SectorsController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondNotFound(w)
		return
	}
	var req dtos.UpdateSectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON payload", err)
		return
	}

	if err := c.svc.Update(r.Context(), id, req.Code); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/sectors/{id}
// -----------------------------------------------------------------------------
func (c *SectorsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondNotFound(w)
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
