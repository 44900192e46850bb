package service

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cardbank/internal/domain"
	"cardbank/internal/errors"
	"cardbank/internal/luhn"
)

// SessionService implements the operations available on one
// authenticated card. Each operation re-fetches the record from the
// repository first, so earlier operations in the same session are
// always reflected.
type SessionService struct {
	cards     domain.CardRepository
	transfers domain.TransferRepository
	logger    *slog.Logger
}

func NewSessionService(
	cards domain.CardRepository,
	transfers domain.TransferRepository,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		cards:     cards,
		transfers: transfers,
		logger:    logger,
	}
}

// Balance returns the card's current balance.
func (s *SessionService) Balance(card *domain.Card) (int64, error) {
	current, err := s.refresh(card)
	if err != nil {
		return 0, err
	}
	return current.Balance, nil
}

// Deposit adds amount to the card's balance. Amount must be non-negative.
func (s *SessionService) Deposit(card *domain.Card, amount int64) error {
	if amount < 0 {
		return errors.ErrInvalidAmount
	}

	current, err := s.refresh(card)
	if err != nil {
		return err
	}

	return s.cards.SetBalance(current.ID, current.Balance+amount)
}

// ValidateReceiver runs the receiver-side transfer checks in order:
// same account, checksum, existence. Transfer repeats them, so a caller
// may use this to reject a bad card number before asking for an amount.
func (s *SessionService) ValidateReceiver(card *domain.Card, receiverNumber string) error {
	if receiverNumber == card.Number {
		return errors.ErrSameAccountTransfer
	}
	if !luhn.Valid(receiverNumber) {
		return errors.ErrInvalidCardNumber
	}

	receiver, err := s.cards.FindByNumber(receiverNumber)
	if err != nil {
		return err
	}
	if receiver == nil {
		return errors.ErrReceiverNotFound
	}
	return nil
}

// Transfer moves amount from the session card to the receiver. Checks
// short-circuit in order: same account, checksum, receiver existence,
// sufficient funds. The credit and the debit are two independent
// commits; a debit failure after a successful credit leaves the store
// inconsistent, an accepted simplification of the single-process design.
func (s *SessionService) Transfer(card *domain.Card, receiverNumber string, amount int64) error {
	s.logger.Info("Processing transfer",
		"sender_id", card.ID,
		"receiver_number", receiverNumber,
		"amount", amount)

	if err := s.ValidateReceiver(card, receiverNumber); err != nil {
		return err
	}
	if amount < 0 {
		return errors.ErrInvalidAmount
	}

	receiver, err := s.cards.FindByNumber(receiverNumber)
	if err != nil {
		return err
	}
	if receiver == nil {
		return errors.ErrReceiverNotFound
	}

	sender, err := s.refresh(card)
	if err != nil {
		return err
	}
	if amount > sender.Balance {
		return errors.ErrInsufficientFunds
	}

	if err := s.cards.SetBalance(receiver.ID, receiver.Balance+amount); err != nil {
		return err
	}
	if err := s.cards.SetBalance(sender.ID, sender.Balance-amount); err != nil {
		return err
	}

	// The journal is advisory; both balances are already committed.
	transfer := &domain.Transfer{
		ID:             uuid.New(),
		SenderNumber:   sender.Number,
		ReceiverNumber: receiver.Number,
		Amount:         amount,
	}
	if err := s.transfers.Record(transfer); err != nil {
		s.logger.Error("Failed to journal transfer", "error", err)
	}

	s.logger.Info("Transfer completed", "transfer_id", transfer.ID)
	return nil
}

// Close deletes the card record. The session record is invalid
// afterwards and the caller's session terminates.
func (s *SessionService) Close(card *domain.Card) error {
	return s.cards.Delete(card.ID)
}

func (s *SessionService) refresh(card *domain.Card) (*domain.Card, error) {
	current, err := s.cards.FindByNumber(card.Number)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.ErrCardNotFound
	}
	return current, nil
}

// ParseAmount converts user-entered text into an amount in the smallest
// currency unit. Negative or fractional values are rejected rather than
// truncated.
func ParseAmount(input string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.ErrInvalidAmount
	}
	if d.IsNegative() || !d.IsInteger() {
		return 0, errors.ErrInvalidAmount
	}
	if !d.BigInt().IsInt64() {
		return 0, errors.ErrInvalidAmount
	}
	return d.IntPart(), nil
}
