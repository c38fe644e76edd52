package controllers

import (
	"net/http"

	"github.com/motix/motix/internal/dtos"
	"github.com/motix/motix/internal/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "ok"})
}
