package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rmolina/gestion-api/internal/domain"
	"github.com/rmolina/gestion-api/internal/store"
)

// Fixed client-facing messages shared by the handlers.
const (
	msgInvalidBody     = "Cuerpo de la petición inválido"
	msgInvalidID       = "ID inválido"
	msgEmailRegistered = "Email ya registrado"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Uniqueness conflicts map to 400, not 409: the API contract reports a
// duplicate email as a plain bad request with a fixed message.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the given
// error. Unrecognized errors get the operation-specific fallback (e.g.
// "Error al crear usuario") so store internals never reach the client.
func GetSafeErrorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, store.ErrUsuarioNotFound):
		return "Usuario no encontrado"

	case errors.Is(err, store.ErrClienteNotFound):
		return "Cliente no encontrado"

	case errors.Is(err, store.ErrEmailExists):
		return msgEmailRegistered

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return msgInvalidBody

	default:
		return fallback
	}
}

// validationMessage translates a request validation failure into the
// resource's reason string. Both resources go through this same path with
// their own field→message table, so malformed writes are rejected uniformly
// before they reach persistence.
//
// Two error shapes are handled: validator.ValidationErrors from struct tag
// validation (missing required fields) and json.UnmarshalTypeError from
// decoding (a field present with the wrong JSON type, e.g. edad as a string).
func validationMessage(err error, messages map[string]string) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if msg, ok := messages[typeErr.Field]; ok {
			return msg
		}
		return msgInvalidBody
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := strings.ToLower(fieldErrs[0].Field())
		if msg, ok := messages[field]; ok {
			return msg
		}
	}

	return msgInvalidBody
}
