package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"taskhive/internal/auth"
)

// RouterConfig wires handlers and middleware into the HTTP surface.
type RouterConfig struct {
	AuthHandler *AuthHandler
	TaskHandler *TaskHandler
	Tokens      *auth.TokenService
	Log         zerolog.Logger
}

// NewRouter builds the full route tree. Registration and login are public;
// everything else sits behind the auth gate.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(requestLogger(cfg.Log))
	r.Use(chimid.Recoverer)

	requireAuth := RequireAuth(cfg.Tokens)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
		r.With(requireAuth).Get("/me", cfg.AuthHandler.Me)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", cfg.TaskHandler.List)
		r.Post("/", cfg.TaskHandler.Create)
		r.Put("/{id}", cfg.TaskHandler.Update)
		r.Delete("/{id}", cfg.TaskHandler.Delete)
	})

	return r
}
