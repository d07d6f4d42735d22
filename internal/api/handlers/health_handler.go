package handlers

import (
	"net/http"

	"github.com/oluwaseyi-a/DocuQuery/internal/api/respond"
	"github.com/oluwaseyi-a/DocuQuery/internal/models"
)

// Health reports static liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Service: "docuquery"})
}
