package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDParam(t *testing.T) {
	tests := []struct {
		name       string
		pathID     string
		expectedID int64
		wantErr    bool
	}{
		{"valid_id", "42", 42, false},
		{"large_id", "9223372036854775807", 9223372036854775807, false},
		{"non_numeric", "abc", 0, true},
		{"negative", "-1", 0, true},
		{"zero", "0", 0, true},
		{"empty", "", 0, true},
		{"float", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/usuarios/x", nil)
			req = withIDParam(req, tt.pathID)

			id, err := idParam(req)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
