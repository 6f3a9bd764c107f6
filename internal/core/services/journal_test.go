package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksim/internal/core/domain"
	"banksim/internal/core/services"
)

func TestJournalAppendAndReadBack(t *testing.T) {
	store := services.NewEntityStore()
	store.AddUser(domain.NewUser("John", "Doe", "john@example.com"))
	journal := services.NewJournal(store)

	// Insertion order is preserved even when timestamps arrive out of order;
	// temporal sorting is the caller's concern.
	journal.Append("john@example.com", domain.NewAccountCreated(20, "RO11BNKS0001"))
	journal.Append("john@example.com", domain.NewInsufficientFunds(10, "RO11BNKS0001"))

	txns := journal.AllFor("john@example.com")
	require.Len(t, txns, 2)
	assert.Equal(t, domain.KindAccountCreated, txns[0].Kind())
	assert.Equal(t, domain.KindInsufficientFunds, txns[1].Kind())
	assert.Equal(t, int64(20), txns[0].When())
}

func TestJournalAppendUnknownUserIsNoOp(t *testing.T) {
	store := services.NewEntityStore()
	journal := services.NewJournal(store)

	journal.Append("nobody@example.com", domain.NewAccountCreated(1, "RO11BNKS0001"))

	assert.Nil(t, journal.AllFor("nobody@example.com"))
}

func TestJournalAppendNilIsNoOp(t *testing.T) {
	store := services.NewEntityStore()
	store.AddUser(domain.NewUser("John", "Doe", "john@example.com"))
	journal := services.NewJournal(store)

	journal.Append("john@example.com", nil)

	assert.Empty(t, journal.AllFor("john@example.com"))
}
