// Package server exposes the resume evaluation engine over HTTP: a
// multipart upload endpoint plus health and stats reporting, with API key
// auth, rate limiting, request size limits, and optional TLS/mTLS.
package server

import (
	"os"
	"time"

	"resumescope/internal/catalog"
	"resumescope/internal/config"
	"resumescope/internal/engine"
	"resumescope/internal/errors"
	"resumescope/internal/extract"
)

// Server holds the HTTP server state and its collaborators.
type Server struct {
	Host    string
	Port    string
	Version string

	AppConfig *config.Config
	TLSConfig config.TLSConfig

	Engine  *engine.Engine
	Catalog *catalog.Catalog

	// Extractor breakers, surfaced on /health
	TextBreaker  *extract.TextExtractorBreaker
	FieldBreaker *extract.FieldExtractorBreaker

	// API Authentication
	APIKeys map[string]bool // Set of valid API keys for O(1) lookup

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Upload handling
	MaxRequestSize int64  // Maximum request size in bytes (0 = no limit)
	UploadDir      string // Directory where uploads are staged

	// Rate Limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *LimiterManager

	// Catalog hot-reload, started with the server when configured
	catalogWatcher *catalog.Watcher

	Logger *errors.Logger
}

// ServerConfig holds the dependencies for creating a new server.
type ServerConfig struct {
	Host         string
	Port         string
	Version      string
	AppConfig    *config.Config
	Engine       *engine.Engine
	Catalog      *catalog.Catalog
	TextBreaker  *extract.TextExtractorBreaker
	FieldBreaker *extract.FieldExtractorBreaker
	Logger       *errors.Logger
}

// NewServer creates a new HTTP server instance from validated configuration.
func NewServer(serverConfig ServerConfig) *Server {
	cfg := serverConfig.AppConfig

	// Convert API keys slice to map for faster lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.Server.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	uploadDir := cfg.Analysis.UploadDir
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}

	server := &Server{
		Host:           serverConfig.Host,
		Port:           serverConfig.Port,
		Version:        serverConfig.Version,
		AppConfig:      cfg,
		TLSConfig:      cfg.Server.TLS,
		Engine:         serverConfig.Engine,
		Catalog:        serverConfig.Catalog,
		TextBreaker:    serverConfig.TextBreaker,
		FieldBreaker:   serverConfig.FieldBreaker,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxFileSize,
		UploadDir:      uploadDir,
		RateLimit:      &cfg.Server.RateLimit,
		Logger:         serverConfig.Logger,
	}

	if server.RateLimit.Enabled {
		server.RateLimiter = NewRateLimiter(
			server.RateLimit.RequestsPerMin,
			server.RateLimit.Window,
			server.RateLimit.BurstCapacity,
			server.Logger,
		)
	}

	return server
}
