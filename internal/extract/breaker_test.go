package extract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resumescope/internal/config"
	"resumescope/internal/types"
)

func breakerTestConfig() *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		MinRequests:      3,
		FailureThreshold: 0.5,
	}
}

type flakyTextExtractor struct {
	err error
}

func (f *flakyTextExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "ok", nil
}

type flakyFieldExtractor struct {
	err error
}

func (f *flakyFieldExtractor) ExtractFields(_ context.Context, _ string) (*types.ResumeFields, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &types.ResumeFields{PageCount: 1}, nil
}

func TestTextBreakerPassthroughWhenDisabled(t *testing.T) {
	b := NewTextExtractorBreaker(&flakyTextExtractor{}, nil, nil)

	text, err := b.ExtractText(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ok" {
		t.Errorf("expected passthrough result, got %q", text)
	}
	if !b.IsHealthy() {
		t.Error("expected disabled breaker to report healthy")
	}
	if stats := b.GetStats(); stats["enabled"] != false {
		t.Errorf("expected enabled=false in stats, got %v", stats)
	}
}

func TestTextBreakerOpensAfterFailures(t *testing.T) {
	inner := &flakyTextExtractor{err: fmt.Errorf("extraction broken")}
	b := NewTextExtractorBreaker(inner, breakerTestConfig(), nil)

	for range 5 {
		_, _ = b.ExtractText(context.Background(), "resume.pdf")
	}

	if b.IsHealthy() {
		t.Error("expected breaker to open after repeated failures")
	}

	// Open breaker rejects without reaching the extractor
	inner.err = nil
	if _, err := b.ExtractText(context.Background(), "resume.pdf"); err == nil {
		t.Error("expected open breaker to reject calls")
	}

	stats := b.GetStats()
	if stats["enabled"] != true {
		t.Errorf("expected enabled=true in stats, got %v", stats)
	}
	if stats["name"] != "TextExtractor" {
		t.Errorf("expected breaker name in stats, got %v", stats["name"])
	}
}

func TestFieldBreakerRecovers(t *testing.T) {
	inner := &flakyFieldExtractor{}
	b := NewFieldExtractorBreaker(inner, breakerTestConfig(), nil)

	record, err := b.ExtractFields(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.PageCount != 1 {
		t.Errorf("expected record to pass through, got %+v", record)
	}
	if !b.IsHealthy() {
		t.Error("expected breaker to stay closed on success")
	}
}
