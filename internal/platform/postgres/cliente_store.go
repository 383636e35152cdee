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

// ClienteStore implements the store.ClienteStore interface
// using a PostgreSQL database as the storage backend.
type ClienteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewClienteStore creates a new PostgreSQL implementation of the
// ClienteStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, slog.Default is used.
func NewClienteStore(db store.DBTX, logger *slog.Logger) *ClienteStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ClienteStore{
		db:     db,
		logger: logger.With(slog.String("component", "cliente_store")),
	}
}

// Ensure ClienteStore implements store.ClienteStore interface
var _ store.ClienteStore = (*ClienteStore)(nil)

// List implements store.ClienteStore.List
// It retrieves all clientes ordered by descending creation time.
func (s *ClienteStore) List(ctx context.Context) ([]domain.Cliente, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, nombre, telefono, email, empresa, created_at
		FROM clientes
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query clientes", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	clientes := []domain.Cliente{}
	for rows.Next() {
		var c domain.Cliente
		err := rows.Scan(&c.ID, &c.Nombre, &c.Telefono, &c.Email, &c.Empresa, &c.CreatedAt)
		if err != nil {
			log.Error("failed to scan cliente row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		clientes = append(clientes, c)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Debug("listed clientes", slog.Int("count", len(clientes)))
	return clientes, nil
}

// GetByID implements store.ClienteStore.GetByID
// Returns store.ErrClienteNotFound if the cliente does not exist.
func (s *ClienteStore) GetByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, nombre, telefono, email, empresa, created_at
		FROM clientes
		WHERE id = $1
	`

	var c domain.Cliente
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Nombre,
		&c.Telefono,
		&c.Email,
		&c.Empresa,
		&c.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("cliente not found", slog.Int64("cliente_id", id))
			return nil, store.ErrClienteNotFound
		}
		log.Error("failed to get cliente by ID",
			slog.String("error", err.Error()),
			slog.Int64("cliente_id", id))
		return nil, MapError(err)
	}

	return &c, nil
}

// Create implements store.ClienteStore.Create
// It inserts a new cliente and fills in the server-generated ID and CreatedAt.
func (s *ClienteStore) Create(ctx context.Context, cliente *domain.Cliente) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cliente.Validate(); err != nil {
		log.Warn("cliente validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO clientes (nombre, telefono, email, empresa)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		cliente.Nombre,
		cliente.Telefono,
		cliente.Email,
		cliente.Empresa,
	).Scan(&cliente.ID, &cliente.CreatedAt)

	if err != nil {
		log.Error("failed to create cliente", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("cliente created successfully", slog.Int64("cliente_id", cliente.ID))
	return nil
}

// Update implements store.ClienteStore.Update
// It replaces all mutable fields of an existing cliente. CreatedAt is immutable.
// Returns store.ErrClienteNotFound if the cliente does not exist.
func (s *ClienteStore) Update(ctx context.Context, cliente *domain.Cliente) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cliente.Validate(); err != nil {
		log.Warn("cliente validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("cliente_id", cliente.ID))
		return err
	}

	// RETURNING created_at refreshes the immutable timestamp on the entity
	// so callers can echo the complete record after a full replace.
	query := `
		UPDATE clientes
		SET nombre = $1,
		    telefono = $2,
		    email = $3,
		    empresa = $4
		WHERE id = $5
		RETURNING created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		cliente.Nombre,
		cliente.Telefono,
		cliente.Email,
		cliente.Empresa,
		cliente.ID,
	).Scan(&cliente.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("cliente not found for update", slog.Int64("cliente_id", cliente.ID))
			return store.ErrClienteNotFound
		}
		log.Error("failed to update cliente",
			slog.String("error", err.Error()),
			slog.Int64("cliente_id", cliente.ID))
		return MapError(err)
	}

	log.Info("cliente updated successfully", slog.Int64("cliente_id", cliente.ID))
	return nil
}

// Delete implements store.ClienteStore.Delete
// Returns store.ErrClienteNotFound if the cliente does not exist.
func (s *ClienteStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM clientes WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete cliente",
			slog.String("error", err.Error()),
			slog.Int64("cliente_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrClienteNotFound); err != nil {
		if errors.Is(err, store.ErrClienteNotFound) {
			log.Debug("cliente not found for delete", slog.Int64("cliente_id", id))
		}
		return err
	}

	log.Info("cliente deleted successfully", slog.Int64("cliente_id", id))
	return nil
}
