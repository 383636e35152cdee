package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/rmolina/gestion-api/internal/api/shared"
	"github.com/rmolina/gestion-api/internal/domain"
	"github.com/rmolina/gestion-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"usuario_not_found", store.ErrUsuarioNotFound, http.StatusNotFound},
		{"cliente_not_found", store.ErrClienteNotFound, http.StatusNotFound},
		{"generic_not_found", store.ErrNotFound, http.StatusNotFound},
		{"wrapped_not_found", fmt.Errorf("lookup: %w", store.ErrUsuarioNotFound), http.StatusNotFound},
		{"email_exists", store.ErrEmailExists, http.StatusBadRequest},
		{"generic_duplicate", store.ErrDuplicate, http.StatusBadRequest},
		{"invalid_entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain_validation", domain.ErrValidation, http.StatusBadRequest},
		{"unknown_error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		expected string
	}{
		{"usuario_not_found", store.ErrUsuarioNotFound, "Error al obtener usuario", "Usuario no encontrado"},
		{"cliente_not_found", store.ErrClienteNotFound, "Error al obtener cliente", "Cliente no encontrado"},
		{"email_exists", store.ErrEmailExists, "Error al crear usuario", "Email ya registrado"},
		{
			"wrapped_email_exists",
			fmt.Errorf("insert: %w", store.ErrEmailExists),
			"Error al crear usuario",
			"Email ya registrado",
		},
		{"unknown_uses_fallback", errors.New("connection refused"), "Error al crear usuario", "Error al crear usuario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err, tt.fallback))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	t.Run("missing_required_field", func(t *testing.T) {
		var req UsuarioRequest
		require.NoError(t, json.Unmarshal([]byte(`{"email": "ana@example.com"}`), &req))
		err := shared.Validate.Struct(req)
		require.Error(t, err)

		assert.Equal(t, "Nombre inválido", validationMessage(err, usuarioFieldMessages))
	})

	t.Run("wrong_json_type", func(t *testing.T) {
		var req UsuarioRequest
		err := json.Unmarshal(
			[]byte(`{"nombre": "Ana", "email": "ana@example.com", "edad": "treinta"}`), &req)
		require.Error(t, err)

		assert.Equal(t, "Edad inválida", validationMessage(err, usuarioFieldMessages))
	})

	t.Run("unknown_error_falls_back", func(t *testing.T) {
		err := errors.New("boom")
		assert.Equal(t, msgInvalidBody, validationMessage(err, usuarioFieldMessages))
	})

	t.Run("cliente_table", func(t *testing.T) {
		var req ClienteRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
		err := shared.Validate.Struct(req)
		require.Error(t, err)

		assert.Equal(t, "El nombre es obligatorio", validationMessage(err, clienteFieldMessages))
	})
}
