package dtos

import "github.com/google/uuid"

type SectorDTO struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

type CreateSectorRequest struct {
	Code string `json:"code" validate:"required"`
}

type UpdateSectorRequest struct {
	Code string `json:"code" validate:"required"`
}
