package models

import (
	"time"

	"github.com/google/uuid"
)

// Movement records a motorcycle's transfer to a sector at a point in time.
// Movements are historical facts: created once, never updated.
type Movement struct {
	ID           uuid.UUID `json:"id"`
	MotorcycleID uuid.UUID `json:"motorcycle_id"`
	SectorID     uuid.UUID `json:"sector_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
