package services

import (
	"banksim/internal/core/domain"
)

// Journal is the per-user append-only transaction log. Records are kept in
// insertion order; callers that need temporal order sort by timestamp before
// rendering, the journal itself guarantees nothing about timestamps.
type Journal struct {
	store *EntityStore
}

// NewJournal creates a journal backed by the given store.
func NewJournal(store *EntityStore) *Journal {
	return &Journal{store: store}
}

// Append adds a record to the user's journal. No-op when the record is nil or
// the user is unknown.
func (j *Journal) Append(email string, txn domain.Transaction) {
	if txn == nil {
		return
	}
	user := j.store.FindUserByEmail(email)
	if user == nil {
		return
	}
	user.Transactions = append(user.Transactions, txn)
}

// AllFor returns the user's journal in insertion order, or nil for an unknown
// user.
func (j *Journal) AllFor(email string) []domain.Transaction {
	user := j.store.FindUserByEmail(email)
	if user == nil {
		return nil
	}
	return user.Transactions
}
