package models

import "github.com/google/uuid"

// Motorcycle is a tracked vehicle with a current sector assignment.
// Plates are stored trimmed and upper-cased.
type Motorcycle struct {
	ID       uuid.UUID `json:"id"`
	Plate    string    `json:"plate"`
	SectorID uuid.UUID `json:"sector_id"`
}
