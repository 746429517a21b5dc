package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"resumescope/internal/catalog"
	"resumescope/internal/config"
	"resumescope/internal/engine"
	"resumescope/internal/errors"
	"resumescope/internal/observability"
	"resumescope/internal/types"
)

type stubFieldExtractor struct {
	record *types.ResumeFields
	err    error
}

func (s stubFieldExtractor) ExtractFields(ctx context.Context, path string) (*types.ResumeFields, error) {
	return s.record, s.err
}

type stubTextExtractor struct {
	text string
	err  error
}

func (s stubTextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return s.text, s.err
}

func strPtr(s string) *string { return &s }

func testResumeRecord() *types.ResumeFields {
	return &types.ResumeFields{
		Name:      strPtr("Jordan Smith"),
		Email:     strPtr("jordan@example.com"),
		Skills:    []string{"tensorflow", "keras"},
		PageCount: 2,
	}
}

// newTestServer builds a server around stub extractors and returns the
// routed handler ready for httptest requests.
func newTestServer(t *testing.T, cfg *config.Config, fields engine.FieldExtractor, text engine.TextExtractor) (*Server, http.Handler) {
	t.Helper()

	logger, err := errors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	if cfg.Analysis.UploadDir == "" {
		cfg.Analysis.UploadDir = t.TempDir()
	}

	cat := catalog.New()
	eng, err := engine.New(cat, fields, text, engine.Options{}, logger)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	srv := NewServer(ServerConfig{
		Host:      "localhost",
		Port:      "0",
		Version:   "test",
		AppConfig: cfg,
		Engine:    eng,
		Catalog:   cat,
		Logger:    logger,
	})

	om, err := observability.NewManager(config.ObservabilityConfig{})
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}

	return srv, srv.setupRoutes(om)
}

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.AnalysisConfig{Matcher: "substring", MaxCourses: 5},
		Server:   config.ServerConfig{Port: "8080"},
		App:      config.AppConfig{MaxFileSize: 1 << 20},
	}
}

// multipartBody builds a multipart form with a single file part.
func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func TestAnalyzeHandler(t *testing.T) {
	tests := []struct {
		name         string
		fields       engine.FieldExtractor
		text         engine.TextExtractor
		formField    string
		expectStatus int
		expectError  string
	}{
		{
			name:         "successful analysis",
			fields:       stubFieldExtractor{record: testResumeRecord()},
			text:         stubTextExtractor{text: "Career Objective\nAcademic Projects"},
			formField:    "resume",
			expectStatus: http.StatusOK,
		},
		{
			name:         "missing resume field",
			fields:       stubFieldExtractor{record: testResumeRecord()},
			text:         stubTextExtractor{},
			formField:    "document",
			expectStatus: http.StatusBadRequest,
			expectError:  "Invalid request",
		},
		{
			name:         "field extraction failure",
			fields:       stubFieldExtractor{err: errors.NewParsingError(errors.ErrCodeParseFailed, "unreadable document", nil)},
			text:         stubTextExtractor{},
			formField:    "resume",
			expectStatus: http.StatusBadRequest,
			expectError:  "Analysis failed",
		},
		{
			name:         "no extractable data",
			fields:       stubFieldExtractor{},
			text:         stubTextExtractor{},
			formField:    "resume",
			expectStatus: http.StatusBadRequest,
			expectError:  "Analysis failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, handler := newTestServer(t, testConfig(), tt.fields, tt.text)

			body, contentType := multipartBody(t, tt.formField, "resume.pdf", "dummy content")
			req := httptest.NewRequest(http.MethodPost, "/analyze", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.expectStatus, rec.Code, rec.Body.String())
			}

			if tt.expectError != "" {
				var errResp ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if errResp.Error != tt.expectError {
					t.Errorf("expected error %q, got %q", tt.expectError, errResp.Error)
				}
				return
			}

			var result types.AnalysisResult
			if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode analysis result: %v", err)
			}
			if result.PredictedField != types.FieldDataScience {
				t.Errorf("expected field %q, got %q", types.FieldDataScience, result.PredictedField)
			}
			if result.CandidateLevel != types.LevelIntermediate {
				t.Errorf("expected level %q, got %q", types.LevelIntermediate, result.CandidateLevel)
			}
			if result.ResumeScore != 40 {
				t.Errorf("expected score 40, got %d", result.ResumeScore)
			}
		})
	}
}

func TestAnalyzeHandlerMethodNotAllowed(t *testing.T) {
	_, handler := newTestServer(t, testConfig(), stubFieldExtractor{record: testResumeRecord()}, stubTextExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestAnalyzeCORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.Server.APIKeys = []string{"secret-key"}
	_, handler := newTestServer(t, cfg, stubFieldExtractor{}, stubTextExtractor{})

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Preflight must succeed without credentials
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected permissive allow-origin, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "X-API-Key") {
		t.Errorf("expected X-API-Key in allowed headers, got %q", got)
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		value        string
		expectStatus int
	}{
		{
			name:         "no credentials",
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:         "valid api key header",
			header:       "X-API-Key",
			value:        "secret-key",
			expectStatus: http.StatusOK,
		},
		{
			name:         "valid bearer token",
			header:       "Authorization",
			value:        "Bearer secret-key",
			expectStatus: http.StatusOK,
		},
		{
			name:         "invalid api key",
			header:       "X-API-Key",
			value:        "wrong-key",
			expectStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Server.APIKeys = []string{"secret-key"}
			_, handler := newTestServer(t, cfg,
				stubFieldExtractor{record: testResumeRecord()},
				stubTextExtractor{text: "Career Objective"})

			body, contentType := multipartBody(t, "resume", "resume.pdf", "dummy")
			req := httptest.NewRequest(http.MethodPost, "/analyze", body)
			req.Header.Set("Content-Type", contentType)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectStatus {
				t.Fatalf("expected status %d, got %d (body: %s)", tt.expectStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAuthSkippedOnHealthEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.Server.APIKeys = []string{"secret-key"}
	_, handler := newTestServer(t, cfg, stubFieldExtractor{}, stubTextExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	_, handler := newTestServer(t, testConfig(), stubFieldExtractor{}, stubTextExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "resumescope" {
		t.Errorf("expected service 'resumescope', got %v", response["service"])
	}
	if _, ok := response["catalog"]; !ok {
		t.Error("expected catalog stats in health response")
	}
}

func TestStatsHandler(t *testing.T) {
	_, handler := newTestServer(t, testConfig(), stubFieldExtractor{}, stubTextExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode stats response: %v", err)
	}

	rateLimiting, ok := response["rate_limiting"].(map[string]any)
	if !ok {
		t.Fatal("expected rate_limiting section in stats response")
	}
	if rateLimiting["enabled"] != false {
		t.Errorf("expected rate limiting disabled, got %v", rateLimiting["enabled"])
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 60,
		BurstCapacity:  2,
		ByIP:           true,
	}
	srv, handler := newTestServer(t, cfg, stubFieldExtractor{}, stubTextExtractor{})
	defer srv.RateLimiter.Close()

	statuses := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %v", statuses)
	}
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = config.RateLimitConfig{
		Enabled:        true,
		RequestsPerMin: 60,
		BurstCapacity:  1,
		ByIP:           true,
	}
	srv, handler := newTestServer(t, cfg, stubFieldExtractor{}, stubTextExtractor{})
	defer srv.RateLimiter.Close()

	for i := range 3 {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = fmt.Sprintf("203.0.113.%d:1234", i+1)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request from distinct IP %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expect     string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.0.2.1:5000",
			expect:     "192.0.2.1",
		},
		{
			name:       "x-forwarded-for wins",
			remoteAddr: "192.0.2.1:5000",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.1"},
			expect:     "198.51.100.4",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "192.0.2.1:5000",
			headers:    map[string]string{"X-Real-IP": "198.51.100.9"},
			expect:     "198.51.100.9",
		},
		{
			name:       "invalid forwarded header ignored",
			remoteAddr: "192.0.2.1:5000",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			expect:     "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := getClientIP(req); got != tt.expect {
				t.Errorf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("expected fully masked short key, got %q", got)
	}
	if got := maskAPIKey("abcdefghijkl"); got != "abcd****" {
		t.Errorf("expected prefix mask, got %q", got)
	}
	if strings.Contains(maskAPIKey("supersecretvalue"), "secretvalue") {
		t.Error("masked key leaks secret material")
	}
}

func TestStageUploadCleanupRemovesFile(t *testing.T) {
	cfg := testConfig()
	srv, _ := newTestServer(t, cfg, stubFieldExtractor{record: testResumeRecord()}, stubTextExtractor{})

	body, contentType := multipartBody(t, "resume", "resume.pdf", "dummy content")
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)

	path, cleanup, err := srv.stageUpload(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("expected staged file to keep extension, got %q", path)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected staged file to exist before cleanup: %v", err)
	}

	cleanup()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected staged file to be removed, stat err: %v", err)
	}
}
