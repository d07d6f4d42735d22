package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/oluwaseyi-a/DocuQuery/internal/api/respond"
	"github.com/oluwaseyi-a/DocuQuery/internal/models"
	"github.com/oluwaseyi-a/DocuQuery/internal/validation"
)

// Upload handles the upload-mode endpoint: a multipart form with a PDF
// under "file" and a JSON-encoded questions array under "questions".
// The file is staged to a temporary path for the pipeline and removed
// again once the request finishes, success or not.
func (h *QAHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// In-memory threshold before parts spill to disk; the size ceiling
	// itself is enforced by the validator against the part header.
	if err := r.ParseMultipartForm(validation.MaxUploadBytes + (1 << 20)); err != nil {
		respond.Error(w, http.StatusBadRequest, "validation_error", "request must be valid multipart form data", nil)
		return
	}

	var header *multipart.FileHeader
	file, hdr, err := r.FormFile("file")
	if err == nil {
		header = hdr
		defer file.Close()
	}

	questions, violations := validation.ValidateUpload(header, r.FormValue("questions"))
	if len(violations) > 0 {
		respond.Error(w, http.StatusBadRequest, "validation_error", "request validation failed", violations)
		return
	}

	path, err := h.staging.Save(file)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to stage uploaded document")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "could not store the uploaded document", nil)
		return
	}
	defer h.staging.Remove(path)

	h.answer(w, r, models.DocumentRequest{Source: models.SourceUpload, Path: path}, questions)
}
