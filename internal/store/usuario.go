package store

import (
	"context"

	"github.com/rmolina/gestion-api/internal/domain"
)

// UsuarioStore defines the interface for usuario data persistence.
type UsuarioStore interface {
	// List retrieves all usuarios ordered by ascending ID.
	// Returns an empty slice when the table is empty, never nil.
	List(ctx context.Context) ([]domain.Usuario, error)

	// GetByID retrieves a usuario by its unique ID.
	// Returns ErrUsuarioNotFound if the usuario does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Usuario, error)

	// Create saves a new usuario to the store and fills in the
	// server-generated ID on the given entity.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, usuario *domain.Usuario) error

	// Update replaces all mutable fields of an existing usuario.
	// Returns ErrUsuarioNotFound if the usuario does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, usuario *domain.Usuario) error

	// Delete removes a usuario from the store by its ID.
	// Returns ErrUsuarioNotFound if the usuario does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id int64) error
}
