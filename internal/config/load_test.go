package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GESTION_DATABASE_URL", "postgres://localhost:5432/gestion")
	t.Setenv("GESTION_SERVER_PORT", "8080")
	t.Setenv("GESTION_SERVER_LOG_LEVEL", "warn")
	t.Setenv("GESTION_SERVER_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Server.LogLevel)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "postgres://localhost:5432/gestion", cfg.Database.URL)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GESTION_DATABASE_URL", "postgres://localhost:5432/gestion")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	// Development mode defaults to debug logging
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoad_ProductionDefaultsToInfoLevel(t *testing.T) {
	t.Setenv("GESTION_DATABASE_URL", "postgres://localhost:5432/gestion")
	t.Setenv("GESTION_SERVER_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("GESTION_DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port_out_of_range", "GESTION_SERVER_PORT", "70000"},
		{"unknown_log_level", "GESTION_SERVER_LOG_LEVEL", "verbose"},
		{"unknown_env", "GESTION_SERVER_ENV", "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GESTION_DATABASE_URL", "postgres://localhost:5432/gestion")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
