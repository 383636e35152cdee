package domain

import (
	"fmt"
	"time"
)

// Cliente represents a customer record. Telefono, Email and Empresa are
// optional and stored as NULL when absent. CreatedAt is assigned by the
// store on insert and never changes afterwards.
type Cliente struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Telefono  *string   `json:"telefono"`
	Email     *string   `json:"email"`
	Empresa   *string   `json:"empresa"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCliente creates a new Cliente with the given fields.
// Returns an error if validation fails.
func NewCliente(nombre string, telefono, email, empresa *string) (*Cliente, error) {
	c := &Cliente{
		Nombre:   nombre,
		Telefono: telefono,
		Email:    email,
		Empresa:  empresa,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Cliente has valid data.
func (c *Cliente) Validate() error {
	if c.Nombre == "" {
		return fmt.Errorf("%w: %s", ErrValidation, ErrEmptyNombre)
	}
	return nil
}
