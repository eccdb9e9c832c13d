// Package server собирает HTTP API: chi роутер, middleware и обработчики.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/pdfsync/internal/config"
	"github.com/iudanet/pdfsync/internal/server/handlers"
	"github.com/iudanet/pdfsync/internal/server/middleware"
	"github.com/iudanet/pdfsync/internal/server/storage"
	"github.com/iudanet/pdfsync/pkg/api"
)

// Store объединяет хранилища, нужные API
type Store interface {
	storage.PDFStorage
	storage.SignatureStorage
	Ping(ctx context.Context) error
}

// Server HTTP обработчик API вместе с фоновыми ресурсами middleware
type Server struct {
	router  chi.Router
	limiter *middleware.RateLimiter
}

// New создает роутер со всеми эндпоинтами
func New(cfg *config.Server, store Store, logger *slog.Logger, version string) *Server {
	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute, logger)

	healthHandler := handlers.NewHealthHandler(logger, store, version)
	signatureHandler := handlers.NewSignatureHandler(logger, store, cfg.MaxUploadBytes())
	pdfHandler := handlers.NewPDFHandler(logger, store, nil, cfg.MaxUploadBytes())

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger, api.PathHealth))
	r.Use(middleware.RecoveryMiddleware(logger))

	r.Get(api.PathHealth, healthHandler.Health)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(middleware.CSRFMiddleware(cfg.CSRFToken, logger))

		r.HandleFunc(api.PathSignatures, signatureHandler.HandleSignatures)
		r.Post(api.PathPDFCreate, pdfHandler.Create)
		r.Post(api.PathPDFUpdate, pdfHandler.Update)
		r.Get("/api/v1/pdf/{id}/current_page", pdfHandler.CurrentPage)
		r.Get("/api/v1/pdf/{id}/file", pdfHandler.File)
	})

	return &Server{router: r, limiter: limiter}
}

// ServeHTTP реализует http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close останавливает фоновую очистку rate limiter
func (s *Server) Close() {
	s.limiter.Stop()
}
