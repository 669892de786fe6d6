// Package web serves the browser front end: a search page rendered on the
// server from a search.View, and a JSON endpoint exposing the same result.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/render"
	"github.com/Belphemur/ShowSearch/internal/search"
)

//go:embed assets/*
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "assets/index.html"))

// Server handles HTTP requests.
type Server struct {
	searcher  search.Searcher
	cards     *render.CardRenderer
	demoQuery string
	demoDelay time.Duration
	mux       *http.ServeMux
}

// NewServer creates the web front end on top of searcher.
func NewServer(cfg *config.Config, searcher search.Searcher) *Server {
	s := &Server{
		searcher:  searcher,
		cards:     render.NewCardRenderer(cfg.PlaceholderImageURL),
		demoQuery: cfg.Demo.Query,
		demoDelay: cfg.DemoDelay(),
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)

	logger := config.GetLogger()
	logger.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("duration", time.Since(start)).
		Msg("HTTP request")
}

func (s *Server) setupRoutes() {
	static, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	s.mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(static)))
	s.mux.HandleFunc("GET /api/search", s.handleAPISearch)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
}

// NewHTTPServer wraps handler with the timeouts the front end runs with.
func NewHTTPServer(address string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", address, port),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

type pageData struct {
	Query           string
	View            search.Snapshot
	DemoQuery       string
	DemoDelayMillis int64
}

// runSearch performs one search against a fresh view. Each HTTP request owns
// its own controller, so no request can overwrite another one's display.
func (s *Server) runSearch(r *http.Request, query string) (search.State, search.Snapshot, error) {
	view := search.NewView()
	ctrl := search.NewController(s.searcher, s.cards, view)
	defer ctrl.Close()

	err := ctrl.Submit(r.Context(), query)
	return ctrl.State(), view.Snapshot(), err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{}

	if values, submitted := r.URL.Query()["q"]; submitted {
		data.Query = values[0]
		_, data.View, _ = s.runSearch(r, data.Query)
	} else if s.demoQuery != "" {
		data.DemoQuery = s.demoQuery
		data.DemoDelayMillis = s.demoDelay.Milliseconds()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Failed to render search page")
	}
}

type apiResponse struct {
	Query string        `json:"query"`
	State string        `json:"state"`
	Error string        `json:"error,omitempty"`
	Cards []render.Card `json:"cards"`
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	state, snap, err := s.runSearch(r, query)

	resp := apiResponse{
		Query: query,
		State: state.String(),
		Cards: snap.Cards,
	}
	if resp.Cards == nil {
		resp.Cards = []render.Card{}
	}
	if snap.ErrorVisible {
		resp.Error = snap.ErrorMessage
	}

	status := http.StatusOK
	switch {
	case errors.Is(err, &apperrors.ErrValidation{}):
		status = http.StatusBadRequest
	case err != nil:
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
