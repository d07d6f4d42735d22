package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/oluwaseyi-a/DocuQuery/internal/api/respond"
	"github.com/oluwaseyi-a/DocuQuery/internal/core/pipeline"
	"github.com/oluwaseyi-a/DocuQuery/internal/models"
	"github.com/oluwaseyi-a/DocuQuery/internal/staging"
	"github.com/oluwaseyi-a/DocuQuery/internal/validation"
)

// PipelineRunner is what the handlers need from the orchestrator.
type PipelineRunner interface {
	Run(ctx context.Context, docReq models.DocumentRequest, questions []string) ([]string, error)
}

type QAHandler struct {
	pipeline PipelineRunner
	staging  *staging.Store
	logger   zerolog.Logger
}

func NewQAHandler(p PipelineRunner, s *staging.Store, logger zerolog.Logger) *QAHandler {
	return &QAHandler{pipeline: p, staging: s, logger: logger}
}

// Run handles the URL-mode endpoint: a JSON body with a document URL and
// the questions list.
func (h *QAHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req models.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
		return
	}

	docReq, questions, violations := validation.ValidateRun(req)
	if len(violations) > 0 {
		respond.Error(w, http.StatusBadRequest, "validation_error", "request validation failed", violations)
		return
	}

	h.answer(w, r, docReq, questions)
}

// answer runs the pipeline and maps its outcome onto HTTP statuses.
func (h *QAHandler) answer(w http.ResponseWriter, r *http.Request, docReq models.DocumentRequest, questions []string) {
	answers, err := h.pipeline.Run(r.Context(), docReq, questions)
	if err != nil {
		var perr *pipeline.PipelineError
		if errors.As(err, &perr) {
			h.logger.Error().Err(err).Str("kind", string(perr.Kind)).Msg("pipeline failed")
			switch perr.Kind {
			case pipeline.KindServiceUnreachable:
				respond.Error(w, http.StatusBadGateway, "service_unreachable", "the answer generation service is unreachable", nil)
			default:
				respond.Error(w, http.StatusUnprocessableEntity, "document_processing_failure", "the document could not be processed", nil)
			}
			return
		}

		h.logger.Error().Err(err).Msg("unclassified pipeline failure")
		respond.Error(w, http.StatusInternalServerError, "internal_error", "unexpected failure", nil)
		return
	}

	respond.JSON(w, http.StatusOK, models.RunResponse{Answers: answers})
}
