package store

import (
	"database/sql"

	"github.com/MKhiriev/go-metadata-console/internal/logger"
	"github.com/MKhiriev/go-metadata-console/migrations"
)

// DB wraps the SQLite connection pool of the local cache.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the cache schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
