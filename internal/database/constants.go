package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// PingTimeout bounds the connectivity check done when the pool is opened
	PingTimeout = 5 * time.Second
)

// Migration Constants
const (
	// MigrationDialect is the goose dialect for the fight store
	MigrationDialect = "postgres"

	// MigrationDir is the directory inside the embedded migrations FS
	MigrationDir = "."
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToSetDialect          = "failed to set migration dialect"
	ErrMsgFailedToRunMigrations       = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgRunningMigrations               = "Running database migrations"
	LogMsgMigrationsComplete              = "Database migrations complete"
)
