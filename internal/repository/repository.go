package repository

import (
	"database/sql"

	"github.com/arnavshah/shift-scheduler-core/internal/config"
)

// Repository wraps a database connection pool with the config needed to
// size per-call timeouts. One instance is shared across every handler.
type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}
