package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/rmolina/gestion-api/internal/api/shared"
	"github.com/rmolina/gestion-api/internal/platform/logger"
)

// Recovery is the terminal error boundary for the request cycle: any panic
// not already converted to a response by a handler is caught here, logged,
// and turned into a generic 500 JSON body with no internal detail leaked.
// It never re-panics, so a single bad request cannot take the process down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log := logger.FromContextOrDefault(r.Context(), nil)
				log.Error("panic recovered while handling request",
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())))

				shared.RespondWithError(w, r,
					http.StatusInternalServerError, "Error interno del servidor")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
