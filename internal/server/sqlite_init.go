package server

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

const DBFilename = "ortobahn.db"

func (a *App) getDiskDBFilePath() string {
	diskDBFilePath := filepath.Join(a.DBDir, DBFilename)
	log.Debug("DB file path", "path", diskDBFilePath)
	return diskDBFilePath
}

// ensureDBDir ensures that the database directory exists.
func (a *App) ensureDBDir() error {
	if _, err := os.Stat(a.DBDir); os.IsNotExist(err) {
		log.Debug("Creating database directory", "dir", a.DBDir)
		if err := os.MkdirAll(a.DBDir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// checkDBFile checks if the database file exists and holds the schema.
func (a *App) checkDBFile(dbPath string) (bool, error) {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Debug("Database file does not exist", "path", dbPath)
		return false, nil
	} else if err != nil {
		return false, err
	}

	// File exists, but let's also check if the tables exist
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return false, fmt.Errorf("failed to open DB to check tables: %w", err)
	}
	defer db.Close()

	var tableCount int
	err = db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name='clients'").Scan(&tableCount)
	if err != nil {
		return false, fmt.Errorf("failed to check for clients table: %w", err)
	}

	if tableCount == 0 {
		log.Debug("Database file exists but clients table is missing, will reinitialize")
		// The file exists but doesn't have the required tables, treat as non-existent
		if err := os.Remove(dbPath); err != nil {
			return false, fmt.Errorf("failed to remove corrupted DB file: %w", err)
		}
		return false, nil
	}

	log.Debug("Database file exists and contains required tables", "path", dbPath)
	return true, nil
}

// InitializeDB initializes the database
func InitializeDB(a *App) (*sql.DB, error) {
	log.Debug("Initializing database")

	if a.DBDir == "" {
		a.DBDir = filepath.Join(a.Config.Server.DataDir, "db")
	}

	if err := a.ensureDBDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure DB directory: %w", err)
	}

	dbPath := a.getDiskDBFilePath()
	a.DBPath = dbPath

	dbExists, err := a.checkDBFile(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check DB file: %w", err)
	}

	if !dbExists {
		log.Debug("Database needs bootstrapping", "path", dbPath)
		if err := bootstrapDB(dbPath); err != nil {
			return nil, fmt.Errorf("failed to bootstrap DB: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open disk DB: %w", err)
	}

	// Test that the database is working
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	a.DB = db
	return db, nil
}

func bootstrapDB(dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}

	_, err = tx.Exec(Schema)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Schema bootstraps the application tables. Kept exported so tests can
// prepare throwaway databases.
const Schema = `
	CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		company TEXT,
		notes TEXT,
		stripe_customer_id TEXT,
		stripe_subscription_id TEXT,
		subscription_status TEXT,
		subscription_plan TEXT,
		created_at TEXT,
		updated_at TEXT
	);
	CREATE TABLE IF NOT EXISTS strategies (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		title TEXT NOT NULL,
		cadence TEXT,
		channels TEXT,
		notes TEXT,
		created_at TEXT,
		updated_at TEXT,
		FOREIGN KEY (client_id) REFERENCES clients(id)
	);
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		strategy_id TEXT,
		title TEXT NOT NULL,
		body TEXT,
		channel TEXT,
		scheduled_for TEXT,
		status TEXT,
		created_at TEXT,
		updated_at TEXT,
		FOREIGN KEY (client_id) REFERENCES clients(id),
		FOREIGN KEY (strategy_id) REFERENCES strategies(id)
	);
	CREATE TABLE IF NOT EXISTS stripe_events (
		id TEXT PRIMARY KEY,
		type TEXT,
		received_at TEXT
	);
`
