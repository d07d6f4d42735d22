package core

import "context"

// LLMProvider wraps the external text-generation service. Implementations
// hold only immutable configuration (client handle, model name) so the
// provider is safe to share across requests.
type LLMProvider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// TextExtractor turns a document reference into a single plain-text string.
// Both entry points share the same parse and empty-content checks; failures
// carry an extract.Reason so callers can tell network from parse trouble.
type TextExtractor interface {
	ExtractFromURL(ctx context.Context, url string) (string, error)
	ExtractFromPath(ctx context.Context, path string) (string, error)
}

// AnswerGenerator produces exactly one answer per question, in question
// order. Individual question failures never surface as errors; they land
// in the answer slot as a fallback string.
type AnswerGenerator interface {
	GenerateAll(ctx context.Context, questions []string, docContext string) ([]string, error)
}
