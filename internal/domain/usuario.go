package domain

import "fmt"

// Usuario represents a registered user of the system.
// The ID is assigned by the store on insert.
type Usuario struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Edad   *int   `json:"edad"`
	Activo bool   `json:"activo"`
}

// NewUsuario creates a new Usuario with the given fields. When activo is nil
// the usuario defaults to active, matching the column default in the store.
// Returns an error if validation fails.
func NewUsuario(nombre, email string, edad *int, activo *bool) (*Usuario, error) {
	u := &Usuario{
		Nombre: nombre,
		Email:  email,
		Edad:   edad,
		Activo: true,
	}
	if activo != nil {
		u.Activo = *activo
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate checks if the Usuario has valid data.
// Returns an error if any field fails validation.
func (u *Usuario) Validate() error {
	if u.Nombre == "" {
		return fmt.Errorf("%w: %s", ErrValidation, ErrEmptyNombre)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: %s", ErrValidation, ErrEmptyEmail)
	}
	return nil
}
