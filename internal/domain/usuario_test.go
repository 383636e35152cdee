package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsuario(t *testing.T) {
	t.Run("defaults_activo_to_true", func(t *testing.T) {
		u, err := NewUsuario("Ana", "ana@example.com", nil, nil)
		require.NoError(t, err)
		assert.True(t, u.Activo)
		assert.Nil(t, u.Edad)
	})

	t.Run("keeps_explicit_activo_false", func(t *testing.T) {
		activo := false
		u, err := NewUsuario("Ana", "ana@example.com", nil, &activo)
		require.NoError(t, err)
		assert.False(t, u.Activo)
	})

	t.Run("rejects_empty_nombre", func(t *testing.T) {
		_, err := NewUsuario("", "ana@example.com", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects_empty_email", func(t *testing.T) {
		_, err := NewUsuario("Ana", "", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
