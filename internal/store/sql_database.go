package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/migrations"
)

// DB wraps an open database/sql connection together with the SQL builder
// configured for the driver's placeholder style and the goose dialect used
// for migrations.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
