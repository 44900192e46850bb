package service

import (
	"log/slog"

	"cardbank/internal/domain"
	"cardbank/internal/errors"
	"cardbank/internal/luhn"
)

type AuthService struct {
	cards  domain.CardRepository
	logger *slog.Logger
}

func NewAuthService(cards domain.CardRepository, logger *slog.Logger) *AuthService {
	return &AuthService{
		cards:  cards,
		logger: logger,
	}
}

// Authenticate verifies a card number and PIN pair and returns the full
// current record. The failure is deliberately generic: callers cannot
// distinguish an unknown number from a wrong PIN.
func (s *AuthService) Authenticate(number, pin string) (*domain.Card, error) {
	card, err := s.cards.FindByNumberAndPIN(number, pin)
	if err != nil {
		return nil, err
	}
	if card == nil {
		s.logger.Info("Authentication failed", "number", number)
		return nil, errors.ErrAuthFailed
	}

	// A stored match whose number fails the checksum means the store
	// was corrupted or tampered with; treat it as an auth failure.
	if !luhn.Valid(card.Number) {
		s.logger.Warn("Stored card number fails checksum", "card_id", card.ID)
		return nil, errors.ErrAuthFailed
	}

	s.logger.Info("Authentication succeeded", "card_id", card.ID)
	return card, nil
}
