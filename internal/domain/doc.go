// Package domain contains the core business entities of the application:
// usuarios and clientes, together with the validation rules that must hold
// before either may reach persistence.
package domain
