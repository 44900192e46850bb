package repository

import (
	"database/sql"
	"log/slog"

	"cardbank/internal/domain"
)

// Store provides a unified entry point for all repository operations.
// Every operation commits immediately; there is no multi-statement
// transaction support because the design treats each durable write as
// an independent round trip.
type Store struct {
	executor SQLExecutor
	logger   *slog.Logger
}

// NewStore creates a new Store instance
func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{
		executor: db,
		logger:   logger,
	}
}

// Cards returns a CardRepository using the current executor
func (s *Store) Cards() domain.CardRepository {
	return NewCardRepository(s.executor, s.logger)
}

// Transfers returns a TransferRepository using the current executor
func (s *Store) Transfers() domain.TransferRepository {
	return NewTransferRepository(s.executor, s.logger)
}
