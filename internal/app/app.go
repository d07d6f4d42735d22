package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/oluwaseyi-a/DocuQuery/internal/api/handlers"
	"github.com/oluwaseyi-a/DocuQuery/internal/config"
	"github.com/oluwaseyi-a/DocuQuery/internal/core/answer"
	"github.com/oluwaseyi-a/DocuQuery/internal/core/extract"
	"github.com/oluwaseyi-a/DocuQuery/internal/core/llm"
	"github.com/oluwaseyi-a/DocuQuery/internal/core/pipeline"
	"github.com/oluwaseyi-a/DocuQuery/internal/staging"
)

type App struct {
	LLM    *llm.GeminiLLM
	Server *Server
}

// NewApp wires every component once at startup. All configuration flows in
// through cfg; no component reads ambient state.
func NewApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	llmProvider, err := llm.NewGeminiLLM(ctx, cfg.AIAPIKey, cfg.GenModel)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the generation client: %w", err)
	}
	logger.Info().Str("model", cfg.GenModel).Msg("Generation client initialized and ready.")

	extractor := extract.NewExtractor(&http.Client{}, cfg.DownloadTimeout)
	generator := answer.NewGenerator(llmProvider, cfg.MaxParallel, logger)
	orchestrator := pipeline.NewOrchestrator(extractor, generator, logger)

	store, err := staging.NewStore(cfg.UploadDir, logger)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the staging store: %w", err)
	}

	qaHandler := handlers.NewQAHandler(orchestrator, store, logger)
	server := NewServer(cfg, qaHandler, logger)

	return &App{LLM: llmProvider, Server: server}, nil
}

func (a *App) Close() {
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
}
