package api

import (
	"log/slog"
	"net/http"

	"github.com/rmolina/gestion-api/internal/api/shared"
	"github.com/rmolina/gestion-api/internal/domain"
	"github.com/rmolina/gestion-api/internal/platform/logger"
	"github.com/rmolina/gestion-api/internal/store"
)

// clienteFieldMessages maps request fields to the reason string returned
// when that field is missing or has the wrong JSON type.
var clienteFieldMessages = map[string]string{
	"nombre":   "El nombre es obligatorio",
	"telefono": "Teléfono inválido",
	"email":    "Email inválido",
	"empresa":  "Empresa inválida",
}

// ClienteRequest represents the request body for creating or updating a
// cliente. Only nombre is required; the rest are nullable.
type ClienteRequest struct {
	Nombre   string  `json:"nombre" validate:"required"`
	Telefono *string `json:"telefono"`
	Email    *string `json:"email"`
	Empresa  *string `json:"empresa"`
}

// ClienteHandler handles cliente-related HTTP requests.
type ClienteHandler struct {
	clientes store.ClienteStore
	logger   *slog.Logger
}

// NewClienteHandler creates a new ClienteHandler.
func NewClienteHandler(clientes store.ClienteStore, logger *slog.Logger) *ClienteHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ClienteHandler")
	}

	return &ClienteHandler{
		clientes: clientes,
		logger:   logger.With(slog.String("component", "cliente_handler")),
	}
}

// List handles GET /api/clientes requests.
// It responds with a bare array ordered by descending creation time.
func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clientes.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error al obtener clientes", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, clientes)
}

// GetByID handles GET /api/clientes/{id} requests.
func (h *ClienteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := idParam(r)
	if err != nil {
		log.Warn("invalid cliente ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		return
	}

	cliente, err := h.clientes.GetByID(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al obtener cliente")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cliente)
}

// Create handles POST /api/clientes requests.
// Responds 201 with the persisted record including the server-assigned
// created_at, or 400 when nombre is empty or missing.
func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ClienteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, clienteFieldMessages))
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("cliente validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, clienteFieldMessages))
		return
	}

	cliente, err := domain.NewCliente(req.Nombre, req.Telefono, req.Email, req.Empresa)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(err, msgInvalidBody))
		return
	}

	if err := h.clientes.Create(r.Context(), cliente); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al crear cliente")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, cliente)
}

// Update handles PUT /api/clientes/{id} requests.
// All mutable fields are replaced wholesale; created_at never changes.
func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := idParam(r)
	if err != nil {
		log.Warn("invalid cliente ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		return
	}

	var req ClienteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body",
			slog.String("error", err.Error()),
			slog.Int64("cliente_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, clienteFieldMessages))
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("cliente validation failed",
			slog.String("error", err.Error()),
			slog.Int64("cliente_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, clienteFieldMessages))
		return
	}

	cliente, err := domain.NewCliente(req.Nombre, req.Telefono, req.Email, req.Empresa)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(err, msgInvalidBody))
		return
	}
	cliente.ID = id

	if err := h.clientes.Update(r.Context(), cliente); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al actualizar cliente")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cliente)
}

// Delete handles DELETE /api/clientes/{id} requests.
// Responds 204 with an empty body on success and 404 when the cliente does
// not exist.
func (h *ClienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := idParam(r)
	if err != nil {
		log.Warn("invalid cliente ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.clientes.Delete(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al eliminar cliente")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
