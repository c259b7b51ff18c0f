// File path: internal/api/server.go
package api

import (
	"context"
	"expvar"
	"net/http"
	"os"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/invoiceworks/edicheck/internal/analysis"
	"github.com/invoiceworks/edicheck/internal/common"
	"github.com/invoiceworks/edicheck/internal/llm"
	"github.com/invoiceworks/edicheck/internal/spec"
)

type Server struct {
	router   chi.Router
	rules    *spec.RuleSet
	analyzer *analysis.Analyzer
	provider llm.Provider
	cfg      Config
}

// Config controls upload limits and the default rule source.
type Config struct {
	// RuleDocPath optionally points at a companion rule document (.yaml or
	// plain text) used when a request carries no specification of its own.
	RuleDocPath string
	// MaxUploadBytes bounds uploaded EDI and rule documents.
	MaxUploadBytes int64
	// Advisory enables the LLM-backed advisory summary endpoint.
	Advisory bool
}

// DefaultConfig returns the standard configuration used when no overrides are
// provided.
func DefaultConfig() Config {
	return Config{
		MaxUploadBytes: 16 << 20,
		Advisory:       true,
	}
}

func NewServer(ctx context.Context, provider llm.Provider, cfg *Config) (*Server, error) {
	logger := common.Logger()
	configuration := DefaultConfig()
	if cfg != nil {
		if strings.TrimSpace(cfg.RuleDocPath) != "" {
			configuration.RuleDocPath = strings.TrimSpace(cfg.RuleDocPath)
		}
		if cfg.MaxUploadBytes > 0 {
			configuration.MaxUploadBytes = cfg.MaxUploadBytes
		}
		configuration.Advisory = cfg.Advisory
	}

	rules := spec.Baseline810()
	if configuration.RuleDocPath != "" {
		data, err := os.ReadFile(configuration.RuleDocPath)
		if err != nil {
			logger.Error("api: rule document unreadable", "path", configuration.RuleDocPath, "error", err)
			return nil, err
		}
		loaded, err := loadRuleDocument(configuration.RuleDocPath, data)
		if err != nil {
			logger.Error("api: rule document rejected", "path", configuration.RuleDocPath, "error", err)
			return nil, err
		}
		rules = loaded
		logger.Info("api: rule document loaded", "path", configuration.RuleDocPath, "fields", rules.Len())
	}

	providerName := "none"
	if provider != nil {
		providerName = provider.Name()
	}
	logger.Info("api: building server", "rules", rules.Len(), "provider", providerName, "advisory", configuration.Advisory)

	srv := &Server{
		router:   chi.NewRouter(),
		rules:    rules,
		analyzer: analysis.NewAnalyzer(),
		provider: provider,
		cfg:      configuration,
	}
	srv.routes()
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	health := func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
	s.router.Get("/healthz", health)
	s.router.Get("/api/health", health)

	s.router.Post("/v1/parse/edi", s.handleParseEDI)
	s.router.Post("/v1/parse/spec", s.handleParseSpec)
	s.router.Post("/v1/compare", s.handleCompare)
	s.router.Post("/v1/compare/export", s.handleExport)
	if s.cfg.Advisory {
		s.router.Post("/v1/summary/advisory", s.handleAdvisory)
	}
	s.router.Get("/v1/logs", s.handleLogs)
	s.router.Handle("/debug/vars", expvar.Handler())
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
