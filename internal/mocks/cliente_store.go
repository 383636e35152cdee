package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/rmolina/gestion-api/internal/domain"
	"github.com/rmolina/gestion-api/internal/store"
)

// MockClienteStore implements store.ClienteStore for testing
type MockClienteStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]domain.Cliente, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Cliente, error)
	CreateFn  func(ctx context.Context, cliente *domain.Cliente) error
	UpdateFn  func(ctx context.Context, cliente *domain.Cliente) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	Clientes map[int64]*domain.Cliente
	NextID   int64
}

// NewMockClienteStore creates a new mock store with initialized defaults
func NewMockClienteStore() *MockClienteStore {
	return &MockClienteStore{
		Clientes: make(map[int64]*domain.Cliente),
		NextID:   1,
	}
}

// List implements the ClienteStore interface
func (m *MockClienteStore) List(ctx context.Context) ([]domain.Cliente, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	clientes := []domain.Cliente{}
	for _, c := range m.Clientes {
		clientes = append(clientes, *c)
	}
	sort.Slice(clientes, func(i, j int) bool {
		return clientes[i].CreatedAt.After(clientes[j].CreatedAt)
	})
	return clientes, nil
}

// GetByID implements the ClienteStore interface
func (m *MockClienteStore) GetByID(ctx context.Context, id int64) (*domain.Cliente, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	cliente, exists := m.Clientes[id]
	if !exists {
		return nil, store.ErrClienteNotFound
	}
	return cliente, nil
}

// Create implements the ClienteStore interface
func (m *MockClienteStore) Create(ctx context.Context, cliente *domain.Cliente) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, cliente)
	}

	cliente.ID = m.NextID
	m.NextID++
	if cliente.CreatedAt.IsZero() {
		cliente.CreatedAt = time.Now().UTC()
	}
	m.Clientes[cliente.ID] = cliente
	return nil
}

// Update implements the ClienteStore interface
func (m *MockClienteStore) Update(ctx context.Context, cliente *domain.Cliente) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, cliente)
	}

	existing, exists := m.Clientes[cliente.ID]
	if !exists {
		return store.ErrClienteNotFound
	}

	// created_at is immutable
	cliente.CreatedAt = existing.CreatedAt
	m.Clientes[cliente.ID] = cliente
	return nil
}

// Delete implements the ClienteStore interface
func (m *MockClienteStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Clientes[id]; !exists {
		return store.ErrClienteNotFound
	}

	delete(m.Clientes, id)
	return nil
}

// Ensure MockClienteStore implements store.ClienteStore
var _ store.ClienteStore = (*MockClienteStore)(nil)
