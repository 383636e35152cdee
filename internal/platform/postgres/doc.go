// Package postgres provides PostgreSQL-specific implementations for the
// storage interfaces defined in the internal/store package. It handles
// query execution, row mapping for usuarios and clientes, and translation
// of driver errors into the store's typed errors.
package postgres
