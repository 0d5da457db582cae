// Package api exposes the outline engine over HTTP.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pfassina/tocnav/internal/config"
	"github.com/pfassina/tocnav/internal/markdown"
)

// maxBodyBytes caps request bodies. Documents larger than this are not
// outlined over HTTP.
const maxBodyBytes = 4 << 20

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	parser *markdown.Parser
	log    *log.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		parser: markdown.NewParser(cfg.Render.CleanText),
		log:    logger,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/outline", s.handleOutline)
		r.Post("/blacklist/toggle", s.handleBlacklistToggle)
		r.Post("/blacklist/match", s.handleBlacklistMatch)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
