package store

import (
	"database/sql"

	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/migrations"
)

// sqliteDialect is the goose dialect name of the client database.
const sqliteDialect = "sqlite3"

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, sqliteDialect)
}
