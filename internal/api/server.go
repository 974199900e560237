// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/isodocs/isonav/internal/common"
	"github.com/isodocs/isonav/internal/engine"
	"github.com/isodocs/isonav/internal/present"
)

// Server wires the deterministic engine and the presentation formatter
// behind the HTTP API consumed by the chat frontend.
type Server struct {
	router    chi.Router
	engine    *engine.Engine
	formatter *present.Formatter
	dataDir   string
}

// Config controls the server's collaborators and paths.
type Config struct {
	DataDir        string
	AllowedOrigins []string
}

// DefaultConfig returns the configuration used when no overrides are
// provided. The default origins cover local frontend development.
func DefaultConfig() Config {
	return Config{
		DataDir:        "data",
		AllowedOrigins: []string{"http://localhost:5173", "http://127.0.0.1:5173"},
	}
}

func NewServer(eng *engine.Engine, formatter *present.Formatter, cfg *Config) (*Server, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine required")
	}
	if formatter == nil {
		return nil, fmt.Errorf("formatter required")
	}
	configuration := DefaultConfig()
	if cfg != nil {
		if strings.TrimSpace(cfg.DataDir) != "" {
			configuration.DataDir = cfg.DataDir
		}
		if len(cfg.AllowedOrigins) > 0 {
			configuration.AllowedOrigins = cfg.AllowedOrigins
		}
	}
	srv := &Server{
		router:    chi.NewRouter(),
		engine:    eng,
		formatter: formatter,
		dataDir:   configuration.DataDir,
	}
	srv.routes(configuration.AllowedOrigins)
	common.Logger().Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(origins []string) {
	logger := common.Logger()

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Post("/api/chat", s.handleChat)
	s.router.Get("/pdfs/{filename}", s.handlePDF)
	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: chat decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("query required"))
		return
	}
	logger.Info("api: chat request received", "query_length", len(req.Query))

	raw := s.engine.AnswerQuery(req.Query)
	answer := s.formatter.Format(r.Context(), raw, req.Query)
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

// handlePDF serves a source document for the download-link footer. Only
// bare filenames inside the data directory are reachable.
func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if filename == "" || filename != filepath.Base(filename) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid filename"))
		return
	}
	path := filepath.Join(s.dataDir, filename)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("document not found"))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": common.LogEntries()})
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
