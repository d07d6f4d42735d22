package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oluwaseyi-a/DocuQuery/internal/core"
)

const systemPrompt = "You are an intelligent assistant answering based only on the given document content. " +
	"If the document does not contain the answer, say so plainly."

// fallbackFormat is the fixed answer substituted when a single question's
// generation call fails. The question text is embedded verbatim so the
// caller can tell which slot degraded.
const fallbackFormat = "Sorry, I couldn't process this question: %s"

type Generator struct {
	llm         core.LLMProvider
	maxParallel int
	logger      zerolog.Logger
}

func NewGenerator(llm core.LLMProvider, maxParallel int, logger zerolog.Logger) *Generator {
	if maxParallel <= 0 {
		maxParallel = 1
	}
	return &Generator{llm: llm, maxParallel: maxParallel, logger: logger}
}

// Fallback returns the fixed failure answer for a question.
func Fallback(question string) string {
	return fmt.Sprintf(fallbackFormat, question)
}

// GenerateOne asks the model a single question against the given document
// context. Every failure — transport, quota, malformed or empty model
// output — is absorbed here and turned into the fallback answer; one bad
// question must never abort the batch.
func (g *Generator) GenerateOne(ctx context.Context, question, docContext string) string {
	userPrompt := buildPrompt(question, docContext)

	text, err := g.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		g.logger.Warn().Err(err).Str("question", question).Msg("generation failed, substituting fallback answer")
		return Fallback(question)
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Warn().Str("question", question).Msg("model returned empty answer, substituting fallback answer")
		return Fallback(question)
	}
	return text
}

// GenerateAll answers every question against the same document context.
// Calls fan out across a bounded worker group and fan in by index, so the
// result slice always lines up with the question order and always has
// len(questions) entries. Only structural conditions (no client, cancelled
// context) surface as an error.
func (g *Generator) GenerateAll(ctx context.Context, questions []string, docContext string) ([]string, error) {
	if g.llm == nil {
		return nil, fmt.Errorf("no generation client configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	answers := make([]string, len(questions))

	eg := &errgroup.Group{}
	eg.SetLimit(g.maxParallel)
	for i, q := range questions {
		i, q := i, q
		eg.Go(func() error {
			answers[i] = g.GenerateOne(ctx, q, docContext)
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = eg.Wait()

	return answers, nil
}

func buildPrompt(question, docContext string) string {
	return fmt.Sprintf("Context:\n%s\n\nQuestion: %s", docContext, question)
}

var _ core.AnswerGenerator = (*Generator)(nil)
