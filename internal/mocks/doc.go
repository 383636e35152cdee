// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of the store interfaces,
// facilitating consistent and DRY testing across the codebase. Instead of
// defining inline mocks in individual test files, these standardized mock
// implementations can be reused.
//
// Each mock exposes function fields for per-test overrides and falls back to
// a simple in-memory map when a field is nil:
//
//	import "github.com/rmolina/gestion-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    mockStore := mocks.NewMockUsuarioStore()
//	    mockStore.CreateFn = func(ctx context.Context, u *domain.Usuario) error {
//	        return store.ErrEmailExists
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
