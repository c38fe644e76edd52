package dtos

import (
	"time"

	"github.com/google/uuid"
)

type MovementDTO struct {
	ID           uuid.UUID `json:"id"`
	MotorcycleID uuid.UUID `json:"motorcycleId"`
	SectorID     uuid.UUID `json:"sectorId"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type CreateMovementRequest struct {
	MotorcycleID uuid.UUID `json:"motorcycleId" validate:"required"`
	SectorID     uuid.UUID `json:"sectorId" validate:"required"`
}
