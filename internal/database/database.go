// Package database opens the configured SQL backend and applies the
// schema. DB_DRIVER selects postgres, sqlite3, or memory; memory skips
// SQL entirely and the caller wires the in-process store instead.
package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens the backend named by DB_DRIVER. It returns (nil, "memory",
// nil) when no SQL database is configured.
func Connect() (*sql.DB, string, error) {
	driver := getEnv("DB_DRIVER", "memory")

	switch driver {
	case "memory":
		return nil, driver, nil

	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "promptquest"),
			getEnv("DB_PASSWORD", "promptquest"),
			getEnv("DB_NAME", "promptquest"),
			getEnv("DB_SSLMODE", "disable"),
		)
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, driver, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, driver, fmt.Errorf("failed to ping database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		return db, driver, nil

	case "sqlite3":
		path := getEnv("DB_PATH", "promptquest.db")
		db, err := sql.Open("sqlite3", path)
		if err != nil {
			return nil, driver, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.Ping(); err != nil {
			return nil, driver, fmt.Errorf("failed to ping database: %w", err)
		}
		// SQLite serializes writes; a single connection avoids lock errors.
		db.SetMaxOpenConns(1)
		return db, driver, nil

	default:
		return nil, driver, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}

// Migrate applies the schema for the given driver.
func Migrate(db *sql.DB, driver string) error {
	var query string
	switch driver {
	case "postgres":
		query = `
	CREATE TABLE IF NOT EXISTS player_progress (
		player_key  VARCHAR(255) PRIMARY KEY,
		progress    JSONB NOT NULL,
		updated_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS quest_submissions (
		id           VARCHAR(36) PRIMARY KEY,
		player_key   VARCHAR(255) NOT NULL,
		quest_id     VARCHAR(100) NOT NULL,
		user_prompt  TEXT NOT NULL,
		score        INT NOT NULL,
		earned_xp    INT NOT NULL,
		fallback     BOOLEAN NOT NULL DEFAULT FALSE,
		submitted_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_player ON quest_submissions(player_key, submitted_at);
	`

	case "sqlite3":
		query = `
	CREATE TABLE IF NOT EXISTS player_progress (
		player_key  TEXT PRIMARY KEY,
		progress    TEXT NOT NULL,
		updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS quest_submissions (
		id           TEXT PRIMARY KEY,
		player_key   TEXT NOT NULL,
		quest_id     TEXT NOT NULL,
		user_prompt  TEXT NOT NULL,
		score        INTEGER NOT NULL,
		earned_xp    INTEGER NOT NULL,
		fallback     BOOLEAN NOT NULL DEFAULT 0,
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_submissions_player ON quest_submissions(player_key, submitted_at);
	`

	default:
		return fmt.Errorf("no schema for driver %q", driver)
	}

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
