// Package bootstrap initializes the database schema and seed data at
// startup. Everything here is idempotent.
package bootstrap

import (
	"database/sql"
	"fmt"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255),
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_date DATETIME NOT NULL,
		last_login_date DATETIME NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id VARCHAR(36) PRIMARY KEY,
		recipient VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_date DATETIME NOT NULL,
		INDEX idx_notifications_recipient (recipient)
	)`,
}

// InitializeSchema creates the service's tables if they do not exist.
func InitializeSchema(db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run schema DDL: %w", err)
		}
	}
	return nil
}
