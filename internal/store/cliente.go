package store

import (
	"context"

	"github.com/rmolina/gestion-api/internal/domain"
)

// ClienteStore defines the interface for cliente data persistence.
type ClienteStore interface {
	// List retrieves all clientes ordered by descending creation time.
	// Returns an empty slice when the table is empty, never nil.
	List(ctx context.Context) ([]domain.Cliente, error)

	// GetByID retrieves a cliente by its unique ID.
	// Returns ErrClienteNotFound if the cliente does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Cliente, error)

	// Create saves a new cliente to the store and fills in the
	// server-generated ID and CreatedAt on the given entity.
	Create(ctx context.Context, cliente *domain.Cliente) error

	// Update replaces all mutable fields of an existing cliente.
	// CreatedAt is immutable and never touched by updates.
	// Returns ErrClienteNotFound if the cliente does not exist.
	Update(ctx context.Context, cliente *domain.Cliente) error

	// Delete removes a cliente from the store by its ID.
	// Returns ErrClienteNotFound if the cliente does not exist.
	Delete(ctx context.Context, id int64) error
}
