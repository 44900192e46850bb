package service

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardbank/internal/luhn"
	"cardbank/internal/repository"
)

func newTestStore(t *testing.T) (*repository.Store, *sql.DB) {
	t.Helper()

	db, err := repository.Open(filepath.Join(t.TempDir(), "card.s3db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.InitSchema(db))

	return repository.NewStore(db, testLogger()), db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var pinPattern = regexp.MustCompile(`^\d{4}$`)

func TestIssue(t *testing.T) {
	store, _ := newTestStore(t)
	issuer := NewIssuer(store.Cards(), testLogger())

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		number, pin, err := issuer.Issue()
		require.NoError(t, err)

		assert.Len(t, number, luhn.NumberLen)
		assert.True(t, strings.HasPrefix(number, IssuerPrefix))
		assert.True(t, luhn.Valid(number), "number %s", number)
		assert.Regexp(t, pinPattern, pin)

		assert.False(t, seen[number], "duplicate number %s", number)
		seen[number] = true
	}
}

func TestIssuePersistsWithZeroBalance(t *testing.T) {
	store, _ := newTestStore(t)
	issuer := NewIssuer(store.Cards(), testLogger())

	number, pin, err := issuer.Issue()
	require.NoError(t, err)

	card, err := store.Cards().FindByNumber(number)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, number, card.Number)
	assert.Equal(t, pin, card.PIN)
	assert.Equal(t, int64(0), card.Balance)
}

func TestRandDigits(t *testing.T) {
	for _, n := range []int{4, 9} {
		for i := 0; i < 100; i++ {
			s := randDigits(n)
			assert.Len(t, s, n)
			for j := 0; j < len(s); j++ {
				assert.GreaterOrEqual(t, s[j], byte('0'))
				assert.LessOrEqual(t, s[j], byte('9'))
			}
		}
	}
}
