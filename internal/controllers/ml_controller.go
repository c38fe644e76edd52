package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/motix/motix/internal/dtos"
	"github.com/motix/motix/internal/metrics"
	"github.com/motix/motix/internal/services"
	"github.com/motix/motix/internal/utils"
)

type MLController struct {
	predictor services.Predictor
}

func NewMLController(predictor services.Predictor) *MLController {
	return &MLController{predictor: predictor}
}

// -----------------------------------------------------------------------------
// POST /api/v1/ml/predict
// -----------------------------------------------------------------------------
func (c *MLController) Predict(w http.ResponseWriter, r *http.Request) {
	var req dtos.MovementFeatures
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON payload", err)
		return
	}

	pred := c.predictor.Predict(req)

	decision := "stay"
	if pred.ShouldMove {
		decision = "move"
	}
	metrics.PredictionsTotal.WithLabelValues(decision).Inc()

	utils.RespondWithJSON(w, http.StatusOK, pred)
}
