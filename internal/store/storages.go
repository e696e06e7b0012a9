package store

import (
	"context"
	"fmt"

	"github.com/vetward/vetward/internal/config"
	"github.com/vetward/vetward/internal/logger"
)

// ClientStorages groups the client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// OperationQueue is the SQLite-backed durable log of pending write
	// intents.
	OperationQueue OperationQueueRepository

	// CaseCache is the SQLite-backed read cache of remote case records.
	CaseCache CaseCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     queue and cache repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		OperationQueue: NewOperationQueueRepository(db, logger),
		CaseCache:      NewCaseCacheRepository(db, logger),
	}, nil
}
