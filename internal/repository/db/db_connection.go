package db

import (
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Driver names as registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// InitDB opens the database for driver, applies driver-specific settings and
// ensures the tables exist.
func InitDB(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s at %q: %w", driver, dsn, err)
	}

	if driver == DriverSQLite {
		if err := tuneSQLite(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if err := EnsureSchema(db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func tuneSQLite(db *sqlx.DB) error {
	// SQLite is not great with many writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("set %s: %w", strings.TrimSuffix(pragma, ";"), err)
		}
	}
	return nil
}

const (
	sqliteIDColumn   = "INTEGER PRIMARY KEY AUTOINCREMENT"
	postgresIDColumn = "BIGSERIAL PRIMARY KEY"
)

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id %[1]s,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    email TEXT UNIQUE NOT NULL,
    img TEXT NOT NULL DEFAULT '',
    equipment TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaGames = `
CREATE TABLE IF NOT EXISTS games (
    id %[1]s,
    owner_id BIGINT NOT NULL REFERENCES users(id),
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    starts_at TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaPosts = `
CREATE TABLE IF NOT EXISTS posts (
    id %[1]s,
    game_id BIGINT NOT NULL REFERENCES games(id),
    user_id BIGINT NOT NULL REFERENCES users(id),
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaComments = `
CREATE TABLE IF NOT EXISTS comments (
    id %[1]s,
    post_id BIGINT NOT NULL REFERENCES posts(id),
    user_id BIGINT NOT NULL REFERENCES users(id),
    body TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

const schemaIndexes = `
CREATE INDEX IF NOT EXISTS idx_posts_game_id ON posts(game_id);
`

const schemaCommentIndexes = `
CREATE INDEX IF NOT EXISTS idx_comments_post_id ON comments(post_id);
`

// SchemaStatements returns the DDL for driver in apply order.
func SchemaStatements(driver string) []string {
	idColumn := sqliteIDColumn
	if driver == DriverPostgres {
		idColumn = postgresIDColumn
	}
	return []string{
		fmt.Sprintf(schemaUsers, idColumn),
		fmt.Sprintf(schemaGames, idColumn),
		fmt.Sprintf(schemaPosts, idColumn),
		fmt.Sprintf(schemaComments, idColumn),
		schemaIndexes,
		schemaCommentIndexes,
	}
}

// EnsureSchema creates missing tables in a single transaction.
func EnsureSchema(db *sqlx.DB, driver string) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// no-op after Commit
		_ = tx.Rollback()
	}()

	for i, stmt := range SchemaStatements(driver) {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
