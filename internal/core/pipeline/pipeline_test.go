package pipeline

import (
	"context"
	"fmt"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluwaseyi-a/DocuQuery/internal/core/extract"
	"github.com/oluwaseyi-a/DocuQuery/internal/models"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractFromURL(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

func (f *fakeExtractor) ExtractFromPath(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

type fakeGenerator struct {
	gotContext string
	err        error
}

func (f *fakeGenerator) GenerateAll(_ context.Context, questions []string, docContext string) ([]string, error) {
	f.gotContext = docContext
	if f.err != nil {
		return nil, f.err
	}
	answers := make([]string, len(questions))
	for i := range questions {
		answers[i] = fmt.Sprintf("answer %d", i)
	}
	return answers, nil
}

func urlRequest() models.DocumentRequest {
	return models.DocumentRequest{Source: models.SourceURL, URL: "https://example.com/doc.pdf"}
}

func TestRun_PassesExtractedTextAsContext(t *testing.T) {
	ext := &fakeExtractor{text: "the document body"}
	gen := &fakeGenerator{}
	orch := NewOrchestrator(ext, gen, zerolog.Nop())

	answers, err := orch.Run(context.Background(), urlRequest(), []string{"first question?", "second question?"})
	require.NoError(t, err)
	assert.Len(t, answers, 2)
	assert.Equal(t, "the document body", gen.gotContext)
}

func TestRun_ExtractionFailureIsNonFatal(t *testing.T) {
	ext := &fakeExtractor{err: &extract.ExtractionError{Reason: extract.ReasonNotFound}}
	gen := &fakeGenerator{}
	orch := NewOrchestrator(ext, gen, zerolog.Nop())

	questions := []string{"q one please?", "q two please?", "q three please?"}
	answers, err := orch.Run(context.Background(), urlRequest(), questions)
	require.NoError(t, err)
	assert.Len(t, answers, len(questions))
	assert.Equal(t, "", gen.gotContext)
}

func TestRun_UploadModeUsesPathExtraction(t *testing.T) {
	ext := &fakeExtractor{text: "staged file body"}
	gen := &fakeGenerator{}
	orch := NewOrchestrator(ext, gen, zerolog.Nop())

	req := models.DocumentRequest{Source: models.SourceUpload, Path: "/tmp/staged.pdf"}
	_, err := orch.Run(context.Background(), req, []string{"only question?"})
	require.NoError(t, err)
	assert.Equal(t, "staged file body", gen.gotContext)
}

func TestRun_StructuralGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("no generation client configured")}
	orch := NewOrchestrator(&fakeExtractor{text: "body"}, gen, zerolog.Nop())

	_, err := orch.Run(context.Background(), urlRequest(), []string{"valid question?"})
	require.Error(t, err)

	var perr *PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindProcessingFailure, perr.Kind)
}

func TestRun_UnreachableServiceClassified(t *testing.T) {
	gen := &fakeGenerator{err: &net.OpError{Op: "dial", Err: fmt.Errorf("connection refused")}}
	orch := NewOrchestrator(&fakeExtractor{text: "body"}, gen, zerolog.Nop())

	_, err := orch.Run(context.Background(), urlRequest(), []string{"valid question?"})
	require.Error(t, err)

	var perr *PipelineError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindServiceUnreachable, perr.Kind)
}
