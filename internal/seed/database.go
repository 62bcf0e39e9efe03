package seed

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"tdgen/internal/config"
)

// DatabaseManager opens connections to the fixture database
type DatabaseManager struct {
	settings config.Database
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(settings config.Database) *DatabaseManager {
	return &DatabaseManager{settings: settings}
}

// DSN returns the MySQL data source name. With withDB false the DSN points
// at the server only, which is needed to create the database.
func (dm *DatabaseManager) DSN(withDB bool) string {
	cfg := mysql.NewConfig()
	cfg.User = dm.settings.User
	cfg.Passwd = dm.settings.Password
	cfg.Net = "tcp"
	cfg.Addr = dm.settings.Addr()
	if withDB {
		cfg.DBName = dm.settings.Name
	}
	return cfg.FormatDSN()
}

// Open makes sure the fixture database exists and returns a connection to it.
func (dm *DatabaseManager) Open() (*sql.DB, error) {
	if !isValidDatabaseName(dm.settings.Name) {
		return nil, fmt.Errorf("invalid database name: %s", dm.settings.Name)
	}

	// Connect to MySQL server (without specifying database)
	server, err := sql.Open("mysql", dm.DSN(false))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer server.Close()

	if err := server.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	exists, err := databaseExists(server, dm.settings.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check database %s: %w", dm.settings.Name, err)
	}
	if !exists {
		query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", quoteIdent(dm.settings.Name))
		if _, err := server.Exec(query); err != nil {
			return nil, fmt.Errorf("failed to create database %s: %w", dm.settings.Name, err)
		}
	}

	db, err := sql.Open("mysql", dm.DSN(true))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dm.settings.Name, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", dm.settings.Name, err)
	}
	return db, nil
}

// databaseExists checks if a database exists
func databaseExists(db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRow(query, dbName).Scan(&exists)
	return exists, err
}

// isValidDatabaseName allows letters, digits, underscore and dollar, up to 64 characters
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
		default:
			return false
		}
	}
	return true
}

// quoteIdent wraps a MySQL identifier in backticks
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
