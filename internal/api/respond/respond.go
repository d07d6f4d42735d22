// Package respond centralizes the JSON envelopes every endpoint uses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/oluwaseyi-a/DocuQuery/internal/models"
)

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, status int, code, message string, details []models.FieldViolation) {
	JSON(w, status, models.ErrorResponse{Error: code, Message: message, Details: details})
}
