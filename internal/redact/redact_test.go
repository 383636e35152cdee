package redact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		notContains string
	}{
		{
			"connection_string_credentials",
			"dial error: postgres://admin:hunter2@db:5432/gestion",
			"hunter2",
		},
		{
			"dsn_password",
			"connect failed: host=db password=hunter2 dbname=gestion",
			"hunter2",
		},
		{
			"email_address",
			`duplicate key value: Key (email)=(ana@example.com) already exists`,
			"ana@example.com",
		},
		{
			"sql_fragment",
			"error in: SELECT id, nombre FROM usuarios WHERE id = $1",
			"FROM usuarios",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := String(tt.input)
			assert.NotContains(t, out, tt.notContains)
		})
	}
}

func TestString_LeavesPlainMessagesAlone(t *testing.T) {
	msg := "context deadline exceeded"
	assert.Equal(t, msg, String(msg))
}

func TestError(t *testing.T) {
	assert.Empty(t, Error(nil))

	err := errors.New("postgres://admin:hunter2@db refused")
	assert.NotContains(t, Error(err), "hunter2")
}
