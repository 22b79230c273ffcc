package db

import "database/sql"

// DB wraps the shared *sql.DB handle so stores depend on a local type
// rather than database/sql directly.
type DB struct {
	*sql.DB
}
