package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"resumescope/internal/errors"
	"resumescope/internal/observability"
	"resumescope/internal/types"
)

// createAnalyzeHandler creates the resume analysis handler. It accepts a
// multipart upload in the "resume" field, stages it under the upload
// directory, runs the evaluation engine, and returns the full result.
func (s *Server) createAnalyzeHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeErrorResponse(w, "Method not allowed", "Only POST method is allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		tracer := om.Tracer("resumescope.server")
		ctx, span := tracer.Start(ctx, "server.analyze")
		defer span.End()

		path, cleanup, err := s.stageUpload(r)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "upload"))
			writeErrorResponse(w, "Invalid request", err.Error(), http.StatusBadRequest)
			return
		}
		defer cleanup()

		metrics := om.GetMetrics()

		var result *types.AnalysisResult
		err = metrics.TrackAnalysisOperation(ctx, "evaluate", func(ctx context.Context) error {
			var evalErr error
			result, evalErr = s.Engine.Evaluate(ctx, path)
			return evalErr
		})

		metrics.RecordBusinessMetric(ctx, "resume_analyzed", err == nil)

		if err != nil {
			s.handleAnalysisError(w, span, err)
			return
		}

		span.SetAttributes(
			attribute.String("predicted_field", string(result.PredictedField)),
			attribute.String("candidate_level", string(result.CandidateLevel)),
			attribute.Int("resume_score", result.ResumeScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			s.Logger.LogError(err, "Failed to encode analysis response")
		}
	}
}

// stageUpload extracts the "resume" multipart file and writes it to the
// upload directory under a random name, preserving the extension so the
// extractors can identify the document type. The returned cleanup removes
// the staged file and must run on every exit path.
func (s *Server) stageUpload(r *http.Request) (string, func(), error) {
	file, header, err := r.FormFile("resume")
	if err != nil {
		return "", nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"multipart field 'resume' is required", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.Logger.Warn("Failed to close uploaded file", "error", err.Error())
		}
	}()

	if header.Filename == "" {
		return "", nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"uploaded file has no filename", nil)
	}

	name := uuid.NewString() + filepath.Ext(header.Filename)
	path := filepath.Join(s.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"failed to stage uploaded file", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.Logger.Warn("Failed to remove staged upload", "path", path, "error", err.Error())
		}
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		cleanup()
		return "", nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"failed to write uploaded file", err)
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			"failed to write uploaded file", err)
	}

	return path, cleanup, nil
}

// handleAnalysisError maps engine failures onto HTTP responses. Analysis
// errors carry the reason back to the client; anything else is logged in
// full and answered with a generic message.
func (s *Server) handleAnalysisError(w http.ResponseWriter, span trace.Span, err error) {
	span.RecordError(err)

	if errors.IsAnalysisError(err) {
		span.SetAttributes(attribute.String("error.type", "analysis"))
		writeErrorResponse(w, "Analysis failed", err.Error(), http.StatusBadRequest)
		return
	}

	span.SetAttributes(attribute.String("error.type", "internal"))
	s.Logger.LogError(err, "Unexpected resume analysis failure")
	writeErrorResponse(w, "Internal server error", "An unexpected error occurred", http.StatusInternalServerError)
}

// createRateLimitMiddleware wraps the base rate limiting middleware so
// rejected requests are recorded as rate limit hits.
func (s *Server) createRateLimitMiddleware(om *observability.Manager) func(http.HandlerFunc) http.HandlerFunc {
	base := s.rateLimitMiddleware()
	metrics := om.GetMetrics()

	return func(next http.HandlerFunc) http.HandlerFunc {
		limited := base(next)
		return func(w http.ResponseWriter, r *http.Request) {
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
			limited(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", false,
					attribute.String("endpoint", r.URL.Path))
			}
		}
	}
}

// responseWrapper captures the status code written by downstream handlers
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
