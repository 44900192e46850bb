package repository

import (
	"database/sql"
	"log/slog"

	"cardbank/internal/domain"
	"cardbank/internal/errors"
)

type cardRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

func NewCardRepository(db SQLExecutor, logger *slog.Logger) domain.CardRepository {
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cardRepository) Create(number, pin string) (int64, error) {
	query := `
		INSERT INTO card (number, pin, balance)
		VALUES (?, ?, 0)
	`

	result, err := r.db.Exec(query, number, pin)
	if err != nil {
		r.logger.Error("Failed to create card", "error", err)
		return 0, errors.NewAppError(errors.InternalError, "failed to create card").WithDetails(err.Error())
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.NewAppError(errors.InternalError, "failed to read new card id").WithDetails(err.Error())
	}

	r.logger.Info("Card created successfully", "card_id", id)
	return id, nil
}

func (r *cardRepository) FindByNumber(number string) (*domain.Card, error) {
	query := `
		SELECT id, number, pin, balance
		FROM card WHERE number = ?
	`

	return r.scanCard(query, number)
}

func (r *cardRepository) FindByNumberAndPIN(number, pin string) (*domain.Card, error) {
	query := `
		SELECT id, number, pin, balance
		FROM card WHERE number = ? AND pin = ?
	`

	return r.scanCard(query, number, pin)
}

// scanCard returns (nil, nil) when no row matches.
func (r *cardRepository) scanCard(query string, args ...interface{}) (*domain.Card, error) {
	var card domain.Card

	err := r.db.QueryRow(query, args...).Scan(
		&card.ID,
		&card.Number,
		&card.PIN,
		&card.Balance,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get card", "error", err)
		return nil, errors.NewAppError(errors.InternalError, "failed to get card").WithDetails(err.Error())
	}

	return &card, nil
}

func (r *cardRepository) SetBalance(id int64, balance int64) error {
	query := `UPDATE card SET balance = ? WHERE id = ?`

	result, err := r.db.Exec(query, balance, id)
	if err != nil {
		r.logger.Error("Failed to update card balance", "card_id", id, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to update card balance").WithDetails(err.Error())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewAppError(errors.InternalError, "failed to get rows affected").WithDetails(err.Error())
	}

	if rowsAffected == 0 {
		r.logger.Warn("No card found to update", "card_id", id)
		return errors.ErrCardNotFound
	}

	r.logger.Info("Card balance updated", "card_id", id, "new_balance", balance)
	return nil
}

// Delete removes the card permanently. Deleting an id that does not
// exist is a no-op.
func (r *cardRepository) Delete(id int64) error {
	query := `DELETE FROM card WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		r.logger.Error("Failed to delete card", "card_id", id, "error", err)
		return errors.NewAppError(errors.InternalError, "failed to delete card").WithDetails(err.Error())
	}

	r.logger.Info("Card deleted", "card_id", id)
	return nil
}
