package dtos

import "github.com/google/uuid"

type MotorcycleDTO struct {
	ID       uuid.UUID `json:"id"`
	Plate    string    `json:"plate"`
	SectorID uuid.UUID `json:"sectorId"`
}

type CreateMotorcycleRequest struct {
	Plate    string    `json:"plate" validate:"required"`
	SectorID uuid.UUID `json:"sectorId" validate:"required"`
}

// UpdateMotorcycleRequest tolerates partial bodies: a blank plate keeps the
// stored plate, a zero sectorId keeps the stored sector.
type UpdateMotorcycleRequest struct {
	Plate    string    `json:"plate"`
	SectorID uuid.UUID `json:"sectorId"`
}
