package repository

import (
	"log/slog"
	"time"

	"cardbank/internal/domain"
	"cardbank/internal/errors"
)

type transferRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewTransferRepository(db SQLExecutor, logger *slog.Logger) domain.TransferRepository {
	return &transferRepository{
		db:     db,
		logger: logger,
	}
}

func (r *transferRepository) Record(transfer *domain.Transfer) error {
	query := `
		INSERT INTO transfers (id, sender_number, receiver_number, amount, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.db.Exec(
		query,
		transfer.ID.String(),
		transfer.SenderNumber,
		transfer.ReceiverNumber,
		transfer.Amount,
		now,
	)

	if err != nil {
		r.logger.Error("Failed to record transfer",
			"transfer_id", transfer.ID,
			"amount", transfer.Amount,
			"error", err)
		return errors.NewAppError(errors.InternalError, "failed to record transfer").WithDetails(err.Error())
	}

	transfer.CreatedAt = now
	r.logger.Info("Transfer recorded", "transfer_id", transfer.ID)
	return nil
}
