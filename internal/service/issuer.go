package service

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"cardbank/internal/domain"
	"cardbank/internal/luhn"
)

// IssuerPrefix is the fixed Issuer Identification Number leading every
// card number.
const IssuerPrefix = "400000"

type Issuer struct {
	cards  domain.CardRepository
	logger *slog.Logger
}

func NewIssuer(cards domain.CardRepository, logger *slog.Logger) *Issuer {
	return &Issuer{
		cards:  cards,
		logger: logger,
	}
}

// Issue generates a unique checksum-valid card number and a 4-digit PIN,
// inserts the new record with balance 0, and returns both. This is the
// only time the PIN is handed out. A collision with an existing number
// discards the candidate and retries with fresh randomness.
func (s *Issuer) Issue() (number, pin string, err error) {
	for {
		body := IssuerPrefix + randDigits(9)
		check, err := luhn.CheckDigit(body)
		if err != nil {
			return "", "", err
		}
		number = body + check
		pin = randDigits(4)

		existing, err := s.cards.FindByNumber(number)
		if err != nil {
			return "", "", err
		}
		if existing != nil {
			s.logger.Warn("Card number collision, regenerating", "number", number)
			continue
		}

		if _, err := s.cards.Create(number, pin); err != nil {
			return "", "", err
		}

		s.logger.Info("Card issued", "number", number)
		return number, pin, nil
	}
}

// randDigits returns n zero-padded random decimal digits from crypto/rand.
func randDigits(n int) string {
	max := big.NewInt(1)
	for i := 0; i < n; i++ {
		max.Mul(max, big.NewInt(10))
	}
	v, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return fmt.Sprintf("%0*d", n, v)
}
