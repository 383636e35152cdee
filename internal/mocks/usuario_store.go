package mocks

import (
	"context"

	"github.com/rmolina/gestion-api/internal/domain"
	"github.com/rmolina/gestion-api/internal/store"
)

// MockUsuarioStore implements store.UsuarioStore for testing
type MockUsuarioStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context) ([]domain.Usuario, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Usuario, error)
	CreateFn  func(ctx context.Context, usuario *domain.Usuario) error
	UpdateFn  func(ctx context.Context, usuario *domain.Usuario) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	Usuarios map[int64]*domain.Usuario
	NextID   int64
}

// NewMockUsuarioStore creates a new mock store with initialized defaults
func NewMockUsuarioStore() *MockUsuarioStore {
	return &MockUsuarioStore{
		Usuarios: make(map[int64]*domain.Usuario),
		NextID:   1,
	}
}

// List implements the UsuarioStore interface
func (m *MockUsuarioStore) List(ctx context.Context) ([]domain.Usuario, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	usuarios := []domain.Usuario{}
	for id := int64(1); id < m.NextID; id++ {
		if u, ok := m.Usuarios[id]; ok {
			usuarios = append(usuarios, *u)
		}
	}
	return usuarios, nil
}

// GetByID implements the UsuarioStore interface
func (m *MockUsuarioStore) GetByID(ctx context.Context, id int64) (*domain.Usuario, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	usuario, exists := m.Usuarios[id]
	if !exists {
		return nil, store.ErrUsuarioNotFound
	}
	return usuario, nil
}

// Create implements the UsuarioStore interface
func (m *MockUsuarioStore) Create(ctx context.Context, usuario *domain.Usuario) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, usuario)
	}

	for _, existing := range m.Usuarios {
		if existing.Email == usuario.Email {
			return store.ErrEmailExists
		}
	}

	usuario.ID = m.NextID
	m.NextID++
	m.Usuarios[usuario.ID] = usuario
	return nil
}

// Update implements the UsuarioStore interface
func (m *MockUsuarioStore) Update(ctx context.Context, usuario *domain.Usuario) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, usuario)
	}

	if _, exists := m.Usuarios[usuario.ID]; !exists {
		return store.ErrUsuarioNotFound
	}

	for id, existing := range m.Usuarios {
		if id != usuario.ID && existing.Email == usuario.Email {
			return store.ErrEmailExists
		}
	}

	m.Usuarios[usuario.ID] = usuario
	return nil
}

// Delete implements the UsuarioStore interface
func (m *MockUsuarioStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Usuarios[id]; !exists {
		return store.ErrUsuarioNotFound
	}

	delete(m.Usuarios, id)
	return nil
}

// Ensure MockUsuarioStore implements store.UsuarioStore
var _ store.UsuarioStore = (*MockUsuarioStore)(nil)
