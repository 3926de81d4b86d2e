package postgre

import (
	"database/sql"

	"inventory-srv/internal/dispatch/repository"
	"inventory-srv/pkg/log"

	"github.com/jmoiron/sqlx"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New - Factory function
func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: sqlx.NewDb(db, "postgres"),
		l:  l,
	}
}
