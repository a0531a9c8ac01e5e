// Package server exposes rounds over a JSON HTTP API so a browser front-end
// can play without reimplementing the game rules.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/config"
	"github.com/sutticue/flashcard-game/internal/vocab"
)

// Server serves the round API.
type Server struct {
	cfg     config.Server
	words   *vocab.Repository
	factory RoundFactory
	rounds  *registry
	log     *zap.Logger
}

// New returns a Server that creates rounds with factory and reports
// dataset stats from words.
func New(cfg config.Server, words *vocab.Repository, factory RoundFactory, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:     cfg,
		words:   words,
		factory: factory,
		rounds:  newRegistry(cfg.MaxRounds),
		log:     log,
	}
}

// Handler returns the HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.log))

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/rounds", func(r chi.Router) {
			r.Post("/", s.createRound)
			r.Route("/{roundID}", func(r chi.Router) {
				r.Get("/", s.getRound)
				r.Post("/answer", s.answer)
				r.Post("/skip", s.skip)
				r.Post("/next", s.next)
				r.Post("/finish", s.finish)
			})
		})
		r.Get("/words/stats", s.wordStats)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"status": "ok", "words": s.words.Len()})
	})

	return r
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  orDefault(s.cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: orDefault(s.cfg.WriteTimeout, 10*time.Second),
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), orDefault(s.cfg.ShutdownTimeout, 5*time.Second))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
