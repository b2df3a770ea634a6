// Package server exposes the blended train positions over HTTP.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bluele/gcache"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/nowtrain/yamanote-live/config"
	"github.com/nowtrain/yamanote-live/gtfsrt"
	"github.com/nowtrain/yamanote-live/history"
	"github.com/nowtrain/yamanote-live/position"
	"github.com/nowtrain/yamanote-live/timetable"
)

const positionsCacheKey = "positions"

// Server computes and serves live Yamanote train positions.
type Server struct {
	cfg       *config.AppConfig
	timetable *timetable.Timetable
	engine    *position.Engine
	feed      *gtfsrt.Client // nil when no feed URL is configured
	store     *history.Store // nil when history is disabled

	cache      gcache.Cache
	httpServer *http.Server
}

// New assembles a server. feed and store may be nil; the endpoint then runs
// timetable-only and skips persistence respectively.
func New(cfg *config.AppConfig, tt *timetable.Timetable, engine *position.Engine, feed *gtfsrt.Client, store *history.Store) *Server {
	ttl := time.Duration(cfg.Server.CacheTTLMS) * time.Millisecond
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Server{
		cfg:       cfg,
		timetable: tt,
		engine:    engine,
		feed:      feed,
		store:     store,
		cache: gcache.New(4).
			LRU().
			Expiration(ttl).
			Build(),
	}
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/trains/yamanote/positions", s.handlePositions)
	if s.store != nil {
		r.Get("/api/trains/yamanote/history/{trainNumber}", s.handleTrainHistory)
	}
	return r
}

// Start begins serving in the background.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("history close error: %v", err)
		}
	}
}
