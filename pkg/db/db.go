// Package db stores and reads article tables in SQLite or PostgreSQL.
package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const DefaultDBName = "articles.db"

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

type DB struct {
	*sql.DB
	driver string
	dsn    string
}

// openDB opens a database for the given driver and applies per-driver settings.
func openDB(driver, dsn string) (*sql.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// Every connection to ":memory:" is a separate database.
		if dsn == ":memory:" {
			sqlDB.SetMaxOpenConns(1)
		}
		// Enable foreign keys
		if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
			_ = sqlDB.Close() // Close error less important than PRAGMA error
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return sqlDB, nil
}

// Open opens the database identified by driver and dsn.
func Open(driver, dsn string) (*DB, error) {
	sqlDB, err := openDB(driver, dsn)
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:     sqlDB,
		driver: driver,
		dsn:    dsn,
	}, nil
}

// OpenSQLite opens or creates a SQLite file and makes sure the articles table exists.
func OpenSQLite(path string) (*DB, error) {
	db, err := Open(DriverSQLite, path)
	if err != nil {
		return nil, err
	}

	if err := db.InitSchema(); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.driver
}

// InitSchema creates the articles table if it does not exist.
func (db *DB) InitSchema() error {
	stmt := sqliteSchema
	if db.driver == DriverPostgres {
		stmt = postgresSchema
	}
	_, err := db.Exec(stmt)
	return err
}

// placeholder returns the n-th (1-based) bind parameter for the driver.
func (db *DB) placeholder(n int) string {
	if db.driver == DriverPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
