package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse is the JSON shape of every error answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// healthHandler reports service health: catalog state and extractor circuit
// breakers. An open breaker degrades the service and flips the status code.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, "Method not allowed", "Only GET method is allowed", http.StatusMethodNotAllowed)
		return
	}

	healthy := true
	extractors := make(map[string]any)

	if s.TextBreaker != nil {
		extractors["text"] = s.TextBreaker.GetStats()
		healthy = healthy && s.TextBreaker.IsHealthy()
	}
	if s.FieldBreaker != nil {
		extractors["fields"] = s.FieldBreaker.GetStats()
		healthy = healthy && s.FieldBreaker.IsHealthy()
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !healthy {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	response := map[string]any{
		"status":     status,
		"service":    "resumescope",
		"version":    s.Version,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"catalog":    s.Catalog.Stats(),
		"extractors": extractors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.Logger.LogError(err, "Failed to encode health response")
	}
}

// statsHandler reports operational statistics and effective configuration
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, "Method not allowed", "Only GET method is allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service":   "resumescope",
		"version":   s.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"catalog":   s.Catalog.Stats(),
		"config": map[string]any{
			"auth_enabled":     len(s.APIKeys) > 0,
			"api_keys":         len(s.APIKeys),
			"max_request_size": s.MaxRequestSize,
			"catalog_watch":    s.AppConfig.Catalog.Watch,
			"matcher":          s.AppConfig.Analysis.Matcher,
			"max_courses":      s.AppConfig.Analysis.MaxCourses,
		},
	}

	if s.RateLimit != nil && s.RateLimit.Enabled && s.RateLimiter != nil {
		stats := s.RateLimiter.GetStats()
		stats["by_ip"] = s.RateLimit.ByIP
		stats["by_api_key"] = s.RateLimit.ByAPIKey
		response["rate_limiting"] = stats
	} else {
		response["rate_limiting"] = map[string]any{"enabled": false}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.Logger.LogError(err, "Failed to encode stats response")
	}
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, errorMsg, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   errorMsg,
		Message: message,
	}

	// Ignore encode errors here; the status code is already committed
	_ = json.NewEncoder(w).Encode(response)
}
