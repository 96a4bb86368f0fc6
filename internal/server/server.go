// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package server serves the rendered portfolio over HTTP and optionally
// reloads it when the content file changes.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/internal/site"
)

// Config holds server configuration.
type Config struct {
	Addr string
	// Source is the content file; its directory is served under /assets/.
	Source content.Source
	// Watch reloads the portfolio when Source changes on disk.
	Watch bool
	// AllowAll allows every CORS origin.
	AllowAll bool
}

// Server renders pages from the current portfolio on every request.
type Server struct {
	cfg      Config
	renderer *site.Renderer
	router   chi.Router

	mu        sync.RWMutex
	portfolio model.Portfolio
	routes    map[string]site.Route
	loadedAt  time.Time

	watcher    *content.Watcher
	httpServer *http.Server
}

// New creates a server for p.
func New(cfg Config, renderer *site.Renderer, p model.Portfolio) *Server {
	s := &Server{cfg: cfg, renderer: renderer}
	s.Set(p)
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if cfg.Watch && cfg.Source.Path != "" {
		s.watcher = content.NewWatcher(cfg.Source, s.reload)
	}
	return s
}

// Set swaps the served portfolio.
func (s *Server) Set(p model.Portfolio) {
	routes := make(map[string]site.Route)
	for _, r := range site.Routes(p) {
		routes[r.Path] = r
	}
	s.mu.Lock()
	s.portfolio = p
	s.routes = routes
	s.loadedAt = time.Now()
	s.mu.Unlock()
}

// Portfolio returns the portfolio currently served.
func (s *Server) Portfolio() model.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.portfolio
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logging.StdLogger(), NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/api/portfolio", s.handlePortfolio)

	r.Handle(site.StaticPrefix+"*", http.StripPrefix(site.StaticPrefix, http.FileServer(http.FS(site.Static()))))
	if dir := s.cfg.Source.AssetDir(); dir != "" {
		r.Handle(site.AssetPrefix+"*", http.StripPrefix(site.AssetPrefix, http.FileServer(http.Dir(dir))))
	}

	r.Get("/*", s.handlePage)
	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	s.mu.RLock()
	p := s.portfolio
	route, ok := s.routes[path]
	_, slashed := s.routes[path+"/"]
	s.mu.RUnlock()

	if !ok {
		if slashed && !strings.HasSuffix(path, "/") {
			http.Redirect(w, r, path+"/", http.StatusMovedPermanently)
			return
		}
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, p, route); err != nil {
		logging.Errorf("render %s: %v", path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

type portfolioResponse struct {
	LoadedAt  time.Time       `json:"loaded_at"`
	Portfolio model.Portfolio `json:"portfolio"`
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	resp := portfolioResponse{LoadedAt: s.loadedAt, Portfolio: s.portfolio}
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Warnf("encode portfolio: %v", err)
	}
}

// Start starts the content watcher when configured and listens until the
// server is shut down.
func (s *Server) Start(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Start(ctx); err != nil {
			return err
		}
	}

	logging.Infof("serving portfolio on http://%s", s.cfg.Addr)
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) reload(p model.Portfolio, err error) {
	if err != nil {
		logging.Warnf("content reload failed, keeping previous version: %v", err)
		return
	}
	s.Set(p)
	logging.Infof("content reloaded from %s", s.cfg.Source.Path)
}

// Shutdown gracefully shuts down the server and stops watching content.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
