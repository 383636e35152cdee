// Package main implements the entry point for the gestion-api server,
// a CRUD API for usuarios and clientes backed by PostgreSQL.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/rmolina/gestion-api/internal/config"
	"github.com/rmolina/gestion-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run database migrations (up|down|status) and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"env", cfg.Server.Env,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("failed to set up database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	if *migrateCmd != "" {
		if err := runMigrations(db, *migrateCmd, appLogger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		return
	}

	app := newApplication(cfg, appLogger, db)

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
