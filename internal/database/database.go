package database

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

const memoryDB = ":memory:"

// InitDB opens the database and applies all pending migrations from migrationsDir.
// With an empty primaryUrl a local SQLite file (or ":memory:") is used, otherwise
// the remote libsql database at primaryUrl. The returned teardown closes the pool.
func InitDB(dbPath string, primaryUrl string, authToken string, migrationsDir string) (*sql.DB, func(), error) {
	db, err := open(dbPath, primaryUrl, authToken)
	if err != nil {
		return nil, nil, err
	}
	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}

	if err := migrate(db, migrationsDir); err != nil {
		teardown()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func open(dbPath, primaryUrl, authToken string) (*sql.DB, error) {
	if primaryUrl == "" {
		log.Info("Initializing local SQLite database", "path", dbPath)
		db, err := sql.Open("sqlite3", "file:"+dbPath+"?_foreign_keys=on")
		if err != nil {
			return nil, fmt.Errorf("failed to open local database: %w", err)
		}
		// Every connection to ":memory:" gets its own database.
		if dbPath == memoryDB {
			db.SetMaxOpenConns(1)
		}
		return db, nil
	}

	log.Info("Initializing Turso database", "url", primaryUrl)
	db, err := sql.Open("libsql", primaryUrl+"?authToken="+authToken)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", primaryUrl, err)
	}
	return db, nil
}

func migrate(db *sql.DB, migrationsDir string) error {
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return err
	}
	version, err := goose.GetDBVersion(db)
	if err != nil {
		return err
	}
	log.Info("Database schema is up to date", "version", version)
	return nil
}
