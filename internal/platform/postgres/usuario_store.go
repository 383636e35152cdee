package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/rmolina/gestion-api/internal/domain"
	"github.com/rmolina/gestion-api/internal/platform/logger"
	"github.com/rmolina/gestion-api/internal/store"
)

// UsuarioStore implements the store.UsuarioStore interface
// using a PostgreSQL database as the storage backend.
type UsuarioStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUsuarioStore creates a new PostgreSQL implementation of the
// UsuarioStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, slog.Default is used.
func NewUsuarioStore(db store.DBTX, logger *slog.Logger) *UsuarioStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UsuarioStore{
		db:     db,
		logger: logger.With(slog.String("component", "usuario_store")),
	}
}

// Ensure UsuarioStore implements store.UsuarioStore interface
var _ store.UsuarioStore = (*UsuarioStore)(nil)

// List implements store.UsuarioStore.List
// It retrieves all usuarios ordered by ascending ID.
func (s *UsuarioStore) List(ctx context.Context) ([]domain.Usuario, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, nombre, email, edad, activo
		FROM usuarios
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query usuarios", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	usuarios := []domain.Usuario{}
	for rows.Next() {
		var u domain.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.Edad, &u.Activo); err != nil {
			log.Error("failed to scan usuario row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		usuarios = append(usuarios, u)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("listed usuarios", slog.Int("count", len(usuarios)))
	return usuarios, nil
}

// GetByID implements store.UsuarioStore.GetByID
// Returns store.ErrUsuarioNotFound if the usuario does not exist.
func (s *UsuarioStore) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, nombre, email, edad, activo
		FROM usuarios
		WHERE id = $1
	`

	var u domain.Usuario
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Nombre,
		&u.Email,
		&u.Edad,
		&u.Activo,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("usuario not found", slog.Int64("usuario_id", id))
			return nil, store.ErrUsuarioNotFound
		}
		log.Error("failed to get usuario by ID",
			slog.String("error", err.Error()),
			slog.Int64("usuario_id", id))
		return nil, MapError(err)
	}

	return &u, nil
}

// Create implements store.UsuarioStore.Create
// It inserts a new usuario and fills in the server-generated ID.
// Returns store.ErrEmailExists if the email is already registered.
func (s *UsuarioStore) Create(ctx context.Context, usuario *domain.Usuario) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := usuario.Validate(); err != nil {
		log.Warn("usuario validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO usuarios (nombre, email, edad, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		usuario.Nombre,
		usuario.Email,
		usuario.Edad,
		usuario.Activo,
	).Scan(&usuario.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during usuario creation",
				slog.String("email", usuario.Email))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		log.Error("failed to create usuario", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("usuario created successfully", slog.Int64("usuario_id", usuario.ID))
	return nil
}

// Update implements store.UsuarioStore.Update
// It replaces all mutable fields of an existing usuario.
// Returns store.ErrUsuarioNotFound if the usuario does not exist.
// Returns store.ErrEmailExists if the new email is already registered.
func (s *UsuarioStore) Update(ctx context.Context, usuario *domain.Usuario) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := usuario.Validate(); err != nil {
		log.Warn("usuario validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("usuario_id", usuario.ID))
		return err
	}

	query := `
		UPDATE usuarios
		SET nombre = $1,
		    email = $2,
		    edad = $3,
		    activo = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		usuario.Nombre,
		usuario.Email,
		usuario.Edad,
		usuario.Activo,
		usuario.ID,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate email during usuario update",
				slog.String("email", usuario.Email),
				slog.Int64("usuario_id", usuario.ID))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		log.Error("failed to update usuario",
			slog.String("error", err.Error()),
			slog.Int64("usuario_id", usuario.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUsuarioNotFound); err != nil {
		if errors.Is(err, store.ErrUsuarioNotFound) {
			log.Debug("usuario not found for update", slog.Int64("usuario_id", usuario.ID))
		}
		return err
	}

	log.Info("usuario updated successfully", slog.Int64("usuario_id", usuario.ID))
	return nil
}

// Delete implements store.UsuarioStore.Delete
// Returns store.ErrUsuarioNotFound if the usuario does not exist.
func (s *UsuarioStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM usuarios WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete usuario",
			slog.String("error", err.Error()),
			slog.Int64("usuario_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUsuarioNotFound); err != nil {
		if errors.Is(err, store.ErrUsuarioNotFound) {
			log.Debug("usuario not found for delete", slog.Int64("usuario_id", id))
		}
		return err
	}

	log.Info("usuario deleted successfully", slog.Int64("usuario_id", id))
	return nil
}
