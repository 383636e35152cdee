package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rmolina/gestion-api/internal/api"
	apiMiddleware "github.com/rmolina/gestion-api/internal/api/middleware"
	"github.com/rmolina/gestion-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware, then our trace IDs and the JSON error boundary.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Recovery)

	usuarioHandler := api.NewUsuarioHandler(app.usuarios, app.logger)
	clienteHandler := api.NewClienteHandler(app.clientes, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/", usuarioHandler.List)
			r.Post("/", usuarioHandler.Create)
			r.Get("/{id}", usuarioHandler.GetByID)
			r.Put("/{id}", usuarioHandler.Update)
			r.Delete("/{id}", usuarioHandler.Delete)
		})

		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", clienteHandler.List)
			r.Post("/", clienteHandler.Create)
			r.Get("/{id}", clienteHandler.GetByID)
			r.Put("/{id}", clienteHandler.Update)
			r.Delete("/{id}", clienteHandler.Delete)
		})
	})

	// Liveness check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
			"status": "API funcionando",
		})
	})

	return r
}
