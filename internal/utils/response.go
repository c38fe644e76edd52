package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrorResponse is the single error shape exposed by the API: a
// human-readable message under the "error" key.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes a JSON error body with the given status. The optional
// devErr carries the internal cause and is only logged, never exposed.
func RespondError(w http.ResponseWriter, status int, publicMessage string, devErrs ...error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: publicMessage})

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Warn(publicMessage)
	}
}

// RespondWithJSON for successful cases.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondNoContent for 204 responses (successful updates and deletes).
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondNotFound for 404 responses without a body.
func RespondNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}
