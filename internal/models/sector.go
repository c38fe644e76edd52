package models

import "github.com/google/uuid"

// Sector is a physical/logical zone a motorcycle can be assigned to.
type Sector struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}
