package repository

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardbank/internal/domain"
	apperrors "cardbank/internal/errors"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "card.s3db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))
	// Schema init is idempotent across restarts.
	require.NoError(t, InitSchema(db))
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateAndFindByNumber(t *testing.T) {
	cards := NewCardRepository(newTestDB(t), testLogger())

	id, err := cards.Create("4000008449433403", "1234")
	require.NoError(t, err)
	assert.Positive(t, id)

	card, err := cards.FindByNumber("4000008449433403")
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, id, card.ID)
	assert.Equal(t, "4000008449433403", card.Number)
	assert.Equal(t, "1234", card.PIN)
	assert.Equal(t, int64(0), card.Balance)
}

func TestFindByNumberMissing(t *testing.T) {
	cards := NewCardRepository(newTestDB(t), testLogger())

	card, err := cards.FindByNumber("4000008449433403")
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestFindByNumberAndPIN(t *testing.T) {
	cards := NewCardRepository(newTestDB(t), testLogger())

	_, err := cards.Create("4000008449433403", "1234")
	require.NoError(t, err)

	card, err := cards.FindByNumberAndPIN("4000008449433403", "1234")
	require.NoError(t, err)
	assert.NotNil(t, card)

	card, err = cards.FindByNumberAndPIN("4000008449433403", "9999")
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestSetBalance(t *testing.T) {
	cards := NewCardRepository(newTestDB(t), testLogger())

	id, err := cards.Create("4000008449433403", "1234")
	require.NoError(t, err)

	require.NoError(t, cards.SetBalance(id, 500))

	card, err := cards.FindByNumber("4000008449433403")
	require.NoError(t, err)
	assert.Equal(t, int64(500), card.Balance)
}

func TestSetBalanceMissingCard(t *testing.T) {
	cards := NewCardRepository(newTestDB(t), testLogger())

	err := cards.SetBalance(42, 500)
	assert.Equal(t, apperrors.CardNotFound, apperrors.CodeOf(err))
}

func TestDeleteIsIdempotent(t *testing.T) {
	cards := NewCardRepository(newTestDB(t), testLogger())

	id, err := cards.Create("4000008449433403", "1234")
	require.NoError(t, err)

	require.NoError(t, cards.Delete(id))
	require.NoError(t, cards.Delete(id))

	card, err := cards.FindByNumber("4000008449433403")
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestRecordTransfer(t *testing.T) {
	db := newTestDB(t)
	transfers := NewTransferRepository(db, testLogger())

	transfer := &domain.Transfer{
		ID:             uuid.New(),
		SenderNumber:   "4000008449433403",
		ReceiverNumber: "4000001234567899",
		Amount:         30,
	}
	require.NoError(t, transfers.Record(transfer))
	assert.False(t, transfer.CreatedAt.IsZero())

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM transfers`).Scan(&count))
	assert.Equal(t, 1, count)
}
