package server

import (
	"net/http"
	"strings"

	"resumescope/internal/observability"
)

// setupRoutes configures all HTTP routes with their middleware chains
func (s *Server) setupRoutes(om *observability.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Health and stats endpoints are unauthenticated but still rate limited
	rateLimitHandler := s.createRateLimitMiddleware(om)
	mux.HandleFunc("/health", rateLimitHandler(s.healthHandler))
	mux.HandleFunc("/stats", rateLimitHandler(s.statsHandler))

	// The analyze endpoint gets the full chain: CORS -> rate limit -> auth -> size limit
	analyzeHandler := s.createAnalyzeHandler(om)
	mux.HandleFunc("/analyze",
		s.corsMiddleware(rateLimitHandler(s.authMiddleware(s.requestSizeLimitMiddleware(analyzeHandler)))))

	return mux
}

// corsMiddleware allows browser clients from any origin and answers
// preflight requests for the analyze endpoint.
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// authMiddleware validates API keys for protected endpoints
func (s *Server) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Skip authentication if no API keys are configured
		if len(s.APIKeys) == 0 {
			next(w, r)
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			// Also check Authorization header with Bearer token
			authHeader := r.Header.Get("Authorization")
			if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
				apiKey = after
			}
		}

		if apiKey == "" {
			s.Logger.Warn("API request without authentication",
				"endpoint", r.URL.Path,
				"client_ip", getClientIP(r))
			writeErrorResponse(w, "Authentication required",
				"Provide an API key via 'X-API-Key' header or 'Authorization: Bearer <key>'",
				http.StatusUnauthorized)
			return
		}

		if !s.APIKeys[apiKey] {
			s.Logger.Warn("API request with invalid key",
				"endpoint", r.URL.Path,
				"client_ip", getClientIP(r),
				"key_prefix", maskAPIKey(apiKey))
			writeErrorResponse(w, "Invalid API key",
				"The provided API key is not valid",
				http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

// requestSizeLimitMiddleware enforces request size limits
func (s *Server) requestSizeLimitMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.MaxRequestSize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)
		}
		next(w, r)
	}
}

// maskAPIKey returns a masked version of the API key for safe logging
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****"
}
