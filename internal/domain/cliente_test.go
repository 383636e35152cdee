package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCliente(t *testing.T) {
	t.Run("optional_fields_stay_nil", func(t *testing.T) {
		c, err := NewCliente("Acme", nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Acme", c.Nombre)
		assert.Nil(t, c.Telefono)
		assert.Nil(t, c.Email)
		assert.Nil(t, c.Empresa)
		assert.True(t, c.CreatedAt.IsZero(), "created_at is assigned by the store")
	})

	t.Run("rejects_empty_nombre", func(t *testing.T) {
		_, err := NewCliente("", nil, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
