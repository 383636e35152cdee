package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"nombre": "Ana"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"nombre": "Ana"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios/1", nil)
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusNotFound, "Usuario no encontrado")

	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Usuario no encontrado", resp.Error)
	// No trace ID in the context, so none in the body
	assert.Empty(t, resp.TraceID)
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios/1", nil)
	req = req.WithContext(SetTraceID(req.Context()))
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusNotFound, "Usuario no encontrado")

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, GetTraceID(req.Context()), resp.TraceID)
	assert.NotEmpty(t, resp.TraceID)
}

func TestRespondWithErrorAndLog_NeverLeaksTheError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios", nil)
	rr := httptest.NewRecorder()

	internalErr := errors.New("pq: connection to postgres://admin:hunter2@db:5432 refused")
	RespondWithErrorAndLog(rr, req, http.StatusInternalServerError, "Error al crear usuario", internalErr)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "hunter2")
	assert.NotContains(t, rr.Body.String(), "postgres://")

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Error al crear usuario", resp.Error)
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// Absent trace ID reads as empty
	assert.Empty(t, GetTraceID(context.Background()))
}
