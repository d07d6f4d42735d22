package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/oluwaseyi-a/DocuQuery/internal/core"
	"github.com/oluwaseyi-a/DocuQuery/internal/core/extract"
	"github.com/oluwaseyi-a/DocuQuery/internal/models"
)

// Kind classifies a structural pipeline failure for HTTP mapping.
type Kind string

const (
	KindProcessingFailure  Kind = "document_processing_failure"
	KindServiceUnreachable Kind = "service_unreachable"
)

// PipelineError is raised only when the whole request fails; individual
// question failures and extraction failures never produce one.
type PipelineError struct {
	Kind Kind
	Err  error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline failed (%s): %v", e.Kind, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// Orchestrator sequences extraction then generation for one request.
// It holds no per-request state; a single instance serves all requests.
type Orchestrator struct {
	extractor core.TextExtractor
	generator core.AnswerGenerator
	logger    zerolog.Logger
}

func NewOrchestrator(ext core.TextExtractor, gen core.AnswerGenerator, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{extractor: ext, generator: gen, logger: logger}
}

// Run extracts the document text and answers every question against it.
// Extraction failure is non-fatal: the run continues with an empty context
// and only the answer quality degrades. The returned slice always has one
// entry per question unless a structural failure aborts the request.
func (o *Orchestrator) Run(ctx context.Context, docReq models.DocumentRequest, questions []string) ([]string, error) {
	docContext := ""

	var text string
	var err error
	switch docReq.Source {
	case models.SourceUpload:
		text, err = o.extractor.ExtractFromPath(ctx, docReq.Path)
	default:
		text, err = o.extractor.ExtractFromURL(ctx, docReq.URL)
	}

	if err != nil {
		evt := o.logger.Warn().Err(err)
		var xerr *extract.ExtractionError
		if errors.As(err, &xerr) {
			evt = evt.Str("reason", string(xerr.Reason))
		}
		evt.Msg("text extraction failed, continuing without document context")
	} else {
		docContext = text
	}

	answers, err := o.generator.GenerateAll(ctx, questions, docContext)
	if err != nil {
		return nil, &PipelineError{Kind: classify(err), Err: err}
	}
	return answers, nil
}

// classify decides whether a structural generation failure means the
// external service is unreachable (502) or processing broke (422).
func classify(err error) Kind {
	var ne net.Error
	if errors.As(err, &ne) || errors.Is(err, syscall.ECONNREFUSED) {
		return KindServiceUnreachable
	}
	return KindProcessingFailure
}
