// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL, PostgreSQL or SQLite connections
// from the application's configuration. The matcher uses it for the database ledger slot.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the database within the
// configured timeout. SQLite connections are limited to a single open connection so that
// in-memory databases behave as one database.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
