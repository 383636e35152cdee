package api

import (
	"log/slog"
	"net/http"

	"github.com/rmolina/gestion-api/internal/api/shared"
	"github.com/rmolina/gestion-api/internal/domain"
	"github.com/rmolina/gestion-api/internal/platform/logger"
	"github.com/rmolina/gestion-api/internal/store"
)

// usuarioFieldMessages maps request fields to the reason string returned
// when that field is missing or has the wrong JSON type.
var usuarioFieldMessages = map[string]string{
	"nombre": "Nombre inválido",
	"email":  "Email inválido",
	"edad":   "Edad inválida",
	"activo": "Activo inválido",
}

// UsuarioRequest represents the request body for creating or updating a
// usuario. Updates are full replaces, so both verbs share the shape.
// Activo defaults to true when omitted, matching the column default.
type UsuarioRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Email  string `json:"email"  validate:"required"`
	Edad   *int   `json:"edad"`
	Activo *bool  `json:"activo"`
}

// UsuarioListResponse wraps the usuario collection with its total count.
type UsuarioListResponse struct {
	Total int              `json:"total"`
	Data  []domain.Usuario `json:"data"`
}

// UsuarioHandler handles usuario-related HTTP requests.
type UsuarioHandler struct {
	usuarios store.UsuarioStore
	logger   *slog.Logger
}

// NewUsuarioHandler creates a new UsuarioHandler.
func NewUsuarioHandler(usuarios store.UsuarioStore, logger *slog.Logger) *UsuarioHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UsuarioHandler")
	}

	return &UsuarioHandler{
		usuarios: usuarios,
		logger:   logger.With(slog.String("component", "usuario_handler")),
	}
}

// List handles GET /api/usuarios requests.
// It responds with the full collection wrapped as {total, data}, where data
// is ordered by ascending ID.
func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.usuarios.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error al obtener usuarios", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UsuarioListResponse{
		Total: len(usuarios),
		Data:  usuarios,
	})
}

// GetByID handles GET /api/usuarios/{id} requests.
func (h *UsuarioHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := idParam(r)
	if err != nil {
		log.Warn("invalid usuario ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		return
	}

	usuario, err := h.usuarios.GetByID(r.Context(), id)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al obtener usuario")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usuario)
}

// Create handles POST /api/usuarios requests.
// Responds 201 with the persisted record, 400 on validation failure, and
// 400 with a fixed message when the email is already registered.
func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UsuarioRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, usuarioFieldMessages))
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("usuario validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, usuarioFieldMessages))
		return
	}

	usuario, err := domain.NewUsuario(req.Nombre, req.Email, req.Edad, req.Activo)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(err, msgInvalidBody))
		return
	}

	if err := h.usuarios.Create(r.Context(), usuario); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al crear usuario")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, usuario)
}

// Update handles PUT /api/usuarios/{id} requests.
// All mutable fields are replaced wholesale; the updated record is echoed
// back with 200, or 404 when the target does not exist.
func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := idParam(r)
	if err != nil {
		log.Warn("invalid usuario ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		return
	}

	var req UsuarioRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request body",
			slog.String("error", err.Error()),
			slog.Int64("usuario_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, usuarioFieldMessages))
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("usuario validation failed",
			slog.String("error", err.Error()),
			slog.Int64("usuario_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest,
			validationMessage(err, usuarioFieldMessages))
		return
	}

	usuario, err := domain.NewUsuario(req.Nombre, req.Email, req.Edad, req.Activo)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			GetSafeErrorMessage(err, msgInvalidBody))
		return
	}
	usuario.ID = id

	if err := h.usuarios.Update(r.Context(), usuario); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al actualizar usuario")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usuario)
}

// Delete handles DELETE /api/usuarios/{id} requests.
// Responds 204 with an empty body on success and 404 when the usuario does
// not exist, so deleting twice reports not-found the second time.
func (h *UsuarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := idParam(r)
	if err != nil {
		log.Warn("invalid usuario ID in URL path", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.usuarios.Delete(r.Context(), id); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err, "Error al eliminar usuario")
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
