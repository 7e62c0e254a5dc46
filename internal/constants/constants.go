package constants

import "time"

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
	ClientTimeout   = 10 * time.Second
)

const (
	// SQLite takes one writer at a time; readers share the rest of the pool.
	DBMaxOpenConns    = 16
	DBMaxIdleConns    = 4
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
	MaxBodyBytes    = 1 << 16
)

const (
	Top10Limit  = 10
	Top100Limit = 100
)

const (
	SecretLength   = 32
	ClientParallel = 4
)
