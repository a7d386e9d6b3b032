// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes loaded listings over HTTP. Every request builds
// its own listing engine over the catalog's current snapshot, so handlers
// share no mutable state.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/pagination"
	"github.com/pdiddy/praxis-listings/internal/render"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

// Server answers listing, facet and health requests.
type Server struct {
	catalog *Catalog
	paging  pagination.Config
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Server. now may be nil to use time.Now.
func New(catalog *Catalog, paging pagination.Config, logger *slog.Logger, now func() time.Time) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Server{catalog: catalog, paging: paging, logger: logger, now: now}
}

// Handler returns the routed handler, wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/listings/{kind}", s.handleListing)
	mux.HandleFunc("GET /api/listings/{kind}/facets", s.handleFacets)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return s.logRequests(mux)
}

func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	kind, items, ok := s.lookup(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	params, err := pagination.ParseQueryParams(q, s.paging)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	e := listing.New(listing.WithClock(s.now))
	if err := e.Initialize(items); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	query := listing.QueryParams{
		Category: q.Get("category"),
		Window:   q.Get("window"),
		Search:   q.Get("q"),
		Sort:     q.Get("sort"),
	}
	if err := query.Apply(e); err != nil {
		if errors.Is(err, listing.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	view, err := e.View()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	_, key, _ := e.State()
	RecordQuery(kind, string(key), view.Count, time.Since(start))

	writeJSON(w, http.StatusOK, render.NewPage(kind, view, params))
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	_, items, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, render.FacetsMap(listing.Facets(items)))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	loadedAt := s.catalog.LoadedAt()
	if loadedAt.IsZero() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"loaded_at": loadedAt.UTC().Format(time.RFC3339),
	})
}

// lookup resolves the {kind} path value and answers 404 itself when the
// kind is unknown or has no loaded source.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (types.Kind, []types.ContentItem, bool) {
	kind, err := types.ParseKind(r.PathValue("kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return "", nil, false
	}
	items, ok := s.catalog.Items(kind)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("no %s listing loaded", kind))
		return "", nil, false
	}
	return kind, items, true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)))
	})
}
