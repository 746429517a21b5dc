package extract

import (
	"context"

	"github.com/sony/gobreaker/v2"

	"resumescope/internal/config"
	"resumescope/internal/engine"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// TextExtractorBreaker wraps a text extractor with circuit breaker
// protection. A nil breaker (disabled in config) is a plain passthrough.
type TextExtractorBreaker struct {
	cb    *gobreaker.CircuitBreaker[string]
	inner engine.TextExtractor
}

// FieldExtractorBreaker wraps a field extractor with circuit breaker
// protection. A nil breaker (disabled in config) is a plain passthrough.
type FieldExtractorBreaker struct {
	cb    *gobreaker.CircuitBreaker[*types.ResumeFields]
	inner engine.FieldExtractor
}

func breakerSettings(name string, cfg *config.CircuitBreakerConfig, logger *errors.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
					"max_requests", cfg.MaxRequests,
					"failure_threshold", cfg.FailureThreshold)
			}
		},
	}
}

// NewTextExtractorBreaker wraps inner with a circuit breaker when enabled.
func NewTextExtractorBreaker(inner engine.TextExtractor, cfg *config.CircuitBreakerConfig, logger *errors.Logger) *TextExtractorBreaker {
	b := &TextExtractorBreaker{inner: inner}
	if cfg != nil && cfg.Enabled {
		b.cb = gobreaker.NewCircuitBreaker[string](breakerSettings("TextExtractor", cfg, logger))
	}
	return b
}

// NewFieldExtractorBreaker wraps inner with a circuit breaker when enabled.
func NewFieldExtractorBreaker(inner engine.FieldExtractor, cfg *config.CircuitBreakerConfig, logger *errors.Logger) *FieldExtractorBreaker {
	b := &FieldExtractorBreaker{inner: inner}
	if cfg != nil && cfg.Enabled {
		b.cb = gobreaker.NewCircuitBreaker[*types.ResumeFields](breakerSettings("FieldExtractor", cfg, logger))
	}
	return b
}

// ExtractText executes the wrapped extractor with breaker protection.
func (b *TextExtractorBreaker) ExtractText(ctx context.Context, path string) (string, error) {
	if b.cb == nil {
		return b.inner.ExtractText(ctx, path)
	}
	return b.cb.Execute(func() (string, error) {
		return b.inner.ExtractText(ctx, path)
	})
}

// ExtractFields executes the wrapped extractor with breaker protection.
func (b *FieldExtractorBreaker) ExtractFields(ctx context.Context, path string) (*types.ResumeFields, error) {
	if b.cb == nil {
		return b.inner.ExtractFields(ctx, path)
	}
	return b.cb.Execute(func() (*types.ResumeFields, error) {
		return b.inner.ExtractFields(ctx, path)
	})
}

// GetStats returns circuit breaker statistics for health reporting.
func (b *TextExtractorBreaker) GetStats() map[string]any {
	return breakerStats(b.cb == nil, func() (string, gobreaker.State, gobreaker.Counts) {
		return b.cb.Name(), b.cb.State(), b.cb.Counts()
	})
}

// GetStats returns circuit breaker statistics for health reporting.
func (b *FieldExtractorBreaker) GetStats() map[string]any {
	return breakerStats(b.cb == nil, func() (string, gobreaker.State, gobreaker.Counts) {
		return b.cb.Name(), b.cb.State(), b.cb.Counts()
	})
}

// IsHealthy returns true unless the breaker is open.
func (b *TextExtractorBreaker) IsHealthy() bool {
	if b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}

// IsHealthy returns true unless the breaker is open.
func (b *FieldExtractorBreaker) IsHealthy() bool {
	if b.cb == nil {
		return true
	}
	return b.cb.State() == gobreaker.StateClosed
}

func breakerStats(disabled bool, read func() (string, gobreaker.State, gobreaker.Counts)) map[string]any {
	if disabled {
		return map[string]any{"enabled": false}
	}
	name, state, counts := read()
	return map[string]any{
		"name":    name,
		"state":   state.String(),
		"counts":  counts,
		"enabled": true,
	}
}
