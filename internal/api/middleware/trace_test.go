package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmolina/gestion-api/internal/api/shared"
	"github.com/rmolina/gestion-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware_AddsTraceIDAndLogger(t *testing.T) {
	var seenTraceID string
	var seenLogger bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		seenLogger = logger.FromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	rr := httptest.NewRecorder()

	TraceMiddleware(next).ServeHTTP(rr, req)

	assert.NotEmpty(t, seenTraceID)
	assert.True(t, seenLogger, "request-scoped logger should be in the context")
}

func TestTraceMiddleware_UniquePerRequest(t *testing.T) {
	ids := map[string]bool{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids[shared.GetTraceID(r.Context())] = true
	})
	handler := TraceMiddleware(next)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Len(t, ids, 3)
}
