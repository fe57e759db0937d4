package store

import (
	"context"

	"github.com/mqsalx/user-management-api/internal/config"
	"github.com/mqsalx/user-management-api/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
}

// NewStorages connects to the configured database and wires all
// repositories on top of the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
	}, nil
}

// Close releases the underlying database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
