package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transfer is one completed card-to-card transfer, recorded after both
// balance writes have committed.
type Transfer struct {
	ID             uuid.UUID
	SenderNumber   string
	ReceiverNumber string
	Amount         int64
	CreatedAt      time.Time
}

type TransferRepository interface {
	Record(transfer *Transfer) error
}
