package cli

import (
	"fmt"

	"resumescope/internal/catalog"
	"resumescope/internal/config"
	"resumescope/internal/engine"
	"resumescope/internal/errors"
	"resumescope/internal/extract"
)

// evaluationStack bundles the engine with the collaborators commands need
// to hold on to (the catalog for hot-reload, the breakers for health).
type evaluationStack struct {
	engine       *engine.Engine
	catalog      *catalog.Catalog
	textBreaker  *extract.TextExtractorBreaker
	fieldBreaker *extract.FieldExtractorBreaker
}

// buildEvaluationStack assembles the catalog, extractors, circuit breakers,
// and engine from validated configuration.
func buildEvaluationStack(cfg *config.Config, logger *errors.Logger) (*evaluationStack, error) {
	cat := catalog.New()
	if cfg.Catalog.Path != "" {
		if err := cat.LoadFromFile(cfg.Catalog.Path); err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	textExtractor := extract.NewPDFTextExtractor()
	textBreaker := extract.NewTextExtractorBreaker(
		textExtractor, &cfg.Analysis.TextExtractor.CircuitBreaker, logger)

	fieldExtractor := extract.NewHeuristicFieldExtractor(textExtractor, cat.AllKeywords())
	fieldBreaker := extract.NewFieldExtractorBreaker(
		fieldExtractor, &cfg.Analysis.FieldExtractor.CircuitBreaker, logger)

	eng, err := engine.New(cat, fieldBreaker, textBreaker, engine.Options{
		Matcher:    cfg.Analysis.Matcher,
		MaxCourses: cfg.Analysis.MaxCourses,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation engine: %w", err)
	}

	return &evaluationStack{
		engine:       eng,
		catalog:      cat,
		textBreaker:  textBreaker,
		fieldBreaker: fieldBreaker,
	}, nil
}
