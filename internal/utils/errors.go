package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrSectorNotFound     = errors.New("sector not found")
	ErrMotorcycleNotFound = errors.New("motorcycle not found")
	ErrMovementNotFound   = errors.New("movement not found")

	// Unresolved foreign-key references on writes.
	ErrSectorRefMissing     = errors.New("sectorId does not exist")
	ErrMotorcycleRefMissing = errors.New("motorcycleId does not exist")
)

// AppError carries an HTTP status alongside the public message so
// controllers can translate service failures without switch ladders.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(status int, message string, err error) *AppError {
	return &AppError{StatusCode: status, Message: message, Err: err}
}

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode == http.StatusNotFound {
			RespondNotFound(w)
			return
		}
		RespondError(w, appErr.StatusCode, appErr.Message, appErr.Err)
		return
	}
	// Fallback for unexpected error types
	RespondError(w, http.StatusInternalServerError, "internal server error", err)
}
