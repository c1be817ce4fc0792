// Package store holds the append-and-list persistence for submitted users.
// Every implementation returns users in the order they were appended.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"gitlab.com/dirk.krummacker/user-form/internal/config"
	"gitlab.com/dirk.krummacker/user-form/internal/model"
)

// Store is an append-only collection of users.
type Store interface {
	// Append adds the user as the new last element.
	Append(ctx context.Context, user model.User) error
	// ListAll returns a fresh slice with every user appended so far, oldest first.
	ListAll(ctx context.Context) ([]model.User, error)
}

// boltFileMode is the permission of newly created bolt files.
const boltFileMode os.FileMode = 0600

// Open builds the store selected by the configuration. The returned function releases the
// resources held by the store and must be called on shutdown.
func Open(cfg *config.Config) (Store, func() error, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemoryStore(), func() error { return nil }, nil
	case config.StoreSQLite, config.StoreMySQL:
		sqlDB, err := sql.Open(cfg.DriverName(), cfg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("could not open %s database: %w", cfg.Store, err)
		}
		if cfg.Store == config.StoreSQLite {
			// Every connection to ":memory:" would see its own empty database.
			sqlDB.SetMaxOpenConns(1)
		}
		s, err := NewSQLStore(sqlDB, cfg.Store)
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.StoreBolt:
		s, err := NewBoltStore(cfg.DBPath, boltFileMode)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
