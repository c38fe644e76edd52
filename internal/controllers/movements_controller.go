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

// MovementsController has no update endpoint: movements are historical
// facts, immutable after creation.
type MovementsController struct {
	svc services.MovementService
}

func NewMovementsController(svc services.MovementService) *MovementsController {
	return &MovementsController{svc: svc}
}

func toMovementDTO(mv models.Movement) dtos.MovementDTO {
	return dtos.MovementDTO{
		ID:           mv.ID,
		MotorcycleID: mv.MotorcycleID,
		SectorID:     mv.SectorID,
		OccurredAt:   mv.OccurredAt,
	}
}

func movementResource(base string, mv models.Movement) dtos.Resource[dtos.MovementDTO] {
	return dtos.Resource[dtos.MovementDTO]{
		Data:  toMovementDTO(mv),
		Links: services.MovementLinks(base, mv.ID),
	}
}

// -----------------------------------------------------------------------------
// GET /api/v1/movements
// -----------------------------------------------------------------------------
func (c *MovementsController) List(w http.ResponseWriter, r *http.Request) {
	paging := parsePaging(r)
	movements, total, err := c.svc.List(r.Context(), paging)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	base := utils.BaseURL(r)
	items := make([]dtos.Resource[dtos.MovementDTO], 0, len(movements))
	for _, mv := range movements {
		items = append(items, movementResource(base, mv))
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewPagedResult(items, paging, total))
}

// -----------------------------------------------------------------------------
// GET /api/v1/movements/{id}
// -----------------------------------------------------------------------------
func (c *MovementsController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.RespondNotFound(w)
		return
	}
	mv, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, movementResource(utils.BaseURL(r), *mv))
}

// -----------------------------------------------------------------------------
// POST /api/v1/movements
// -----------------------------------------------------------------------------
func (c *MovementsController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON payload", err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, validationMessage(err), err)
		return
	}

	mv, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	w.Header().Set("Location", routes.Movements+"/"+mv.ID.String())
	utils.RespondWithJSON(w, http.StatusCreated, movementResource(utils.BaseURL(r), *mv))
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/movements/{id}
// -----------------------------------------------------------------------------
// Always 204: deleting an absent movement is a success (idempotent),
// unlike sector and motorcycle deletes.
func (c *MovementsController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		// malformed ids also fall under "nothing to delete"
		utils.RespondNoContent(w)
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
