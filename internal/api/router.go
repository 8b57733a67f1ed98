package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/transgate-dev/transgate/internal/config"
	"github.com/transgate-dev/transgate/internal/translator"
)

// Router wraps a chi router with handler configuration
type Router struct {
	chi     chi.Router
	handler *Handler
}

// NewRouter creates a new Router with the given dependencies
func NewRouter(service *translator.Service, cfg *config.Config, logger *slog.Logger) *Router {
	handler := NewHandler(service, cfg, logger)

	r := chi.NewRouter()

	// Apply middleware. The generous timeout covers beam-search decoding of
	// many chunks in one request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Register routes
	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Get("/languages", handler.Languages)
	r.Post("/translate", handler.Translate)

	return &Router{
		chi:     r,
		handler: handler,
	}
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.chi.ServeHTTP(w, req)
}
