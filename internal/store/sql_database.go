package store

import (
	"database/sql"

	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
