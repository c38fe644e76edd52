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

type MotorcyclesController struct {
	svc services.MotorcycleService
}

func NewMotorcyclesController(svc services.MotorcycleService) *MotorcyclesController {
	return &MotorcyclesController{svc: svc}
}

func toMotorcycleDTO(m models.Motorcycle) dtos.MotorcycleDTO {
	return dtos.MotorcycleDTO{ID: m.ID, Plate: m.Plate, SectorID: m.SectorID}
}

func motorcycleResource(base string, m models.Motorcycle) dtos.Resource[dtos.MotorcycleDTO] {
	return dtos.Resource[dtos.MotorcycleDTO]{
		Data:  toMotorcycleDTO(m),
		Links: services.MotorcycleLinks(base, m.ID),
	}
}

// -----------------------------------------------------------------------------
// GET /api/v1/motorcycles
// -----------------------------------------------------------------------------
func (c *MotorcyclesController) List(w http.ResponseWriter, r *http.Request) {
	paging := parsePaging(r)
	motorcycles, total, err := c.svc.List(r.Context(), paging)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	base := utils.BaseURL(r)
	items := make([]dtos.Resource[dtos.MotorcycleDTO], 0, len(motorcycles))
	for _, m := range motorcycles {
		items = append(items, motorcycleResource(base, m))
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPagedResult(items, paging, total))
}

// -----------------------------------------------------------------------------
// GET /api/v1/motorcycles/{id}
// -----------------------------------------------------------------------------
func (c *MotorcyclesController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondNotFound(w)
		return
	}
	m, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, motorcycleResource(utils.BaseURL(r), *m))
}

// -----------------------------------------------------------------------------
// POST /api/v1/motorcycles
// -----------------------------------------------------------------------------
func (c *MotorcyclesController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON payload", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, validationMessage(err), err)
		return
	}

	m, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	w.Header().Set("Location", routes.Motorcycles+"/"+m.ID.String())
	utils.RespondWithJSON(w, http.StatusCreated, motorcycleResource(utils.BaseURL(r), *m))
}

// -----------------------------------------------------------------------------
// PUT /api/v1/motorcycles/{id}
// -----------------------------------------------------------------------------
func (c *MotorcyclesController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondNotFound(w)
		return
	}
	var req dtos.UpdateMotorcycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON payload", err)
		return
	}

	if err := c.svc.Update(r.Context(), id, req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/motorcycles/{id}
// -----------------------------------------------------------------------------
func (c *MotorcyclesController) Delete(w http.ResponseWriter, r *http.Request) {
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
