package db

import (
	"database/sql"
	"fmt"
	"go-atm-sim/config"
	"go-atm-sim/logger"

	_ "modernc.org/sqlite"
)

// Connect opens the embedded sqlite database named in the config. The caller
// owns the handle and must close it on every exit path.
func Connect() (*sql.DB, error) {
	path := config.AppConfig.Database.Path

	logger.Log.WithField("path", path).Info("Opening sqlite database")

	database, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to open database connection")
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// One actor, one connection. Multiple pooled connections would just
	// contend for the sqlite write lock.
	database.SetMaxOpenConns(1)

	if err = database.Ping(); err != nil {
		database.Close()
		logger.Log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Database connection established successfully")
	return database, nil
}
