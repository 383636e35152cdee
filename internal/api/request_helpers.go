package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// idParam extracts the {id} URL parameter and parses it as a positive
// integer. Returns an error for missing, non-numeric, or non-positive IDs.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, fmt.Errorf("missing id parameter")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id parameter %q: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id parameter %d: must be positive", id)
	}

	return id, nil
}
