package main

import (
	"database/sql"
	"log/slog"

	"github.com/rmolina/gestion-api/internal/config"
	"github.com/rmolina/gestion-api/internal/platform/postgres"
	"github.com/rmolina/gestion-api/internal/store"
)

// application holds the shared dependencies of the server: configuration,
// the root logger, the connection pool, and the stores built on top of it.
// Everything is injected at construction time; there are no package-level
// singletons.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	usuarios store.UsuarioStore
	clientes store.ClienteStore
}

// newApplication wires the stores to the connection pool and returns the
// assembled application.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		usuarios: postgres.NewUsuarioStore(db, logger),
		clientes: postgres.NewClienteStore(db, logger),
	}
}
