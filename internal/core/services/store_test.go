package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksim/internal/apperrors"
	"banksim/internal/core/domain"
	"banksim/internal/core/services"
)

func TestFindUserByEmail(t *testing.T) {
	store := services.NewEntityStore()
	store.AddUser(domain.NewUser("John", "Doe", "john@example.com"))
	store.AddUser(domain.NewUser("Jane", "Doe", "jane@example.com"))

	user := store.FindUserByEmail("jane@example.com")
	require.NotNil(t, user)
	assert.Equal(t, "Jane", user.FirstName)

	assert.Nil(t, store.FindUserByEmail("nobody@example.com"))
}

func TestAddUserRejectsDuplicateEmail(t *testing.T) {
	store := services.NewEntityStore()
	require.NoError(t, store.AddUser(domain.NewUser("John", "Doe", "john@example.com")))

	err := store.AddUser(domain.NewUser("Johnny", "Doe", "john@example.com"))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	require.Len(t, store.Users(), 1)
	assert.Equal(t, "John", store.Users()[0].FirstName)
}

func TestAddUserRejectsNil(t *testing.T) {
	store := services.NewEntityStore()
	assert.ErrorIs(t, store.AddUser(nil), apperrors.ErrValidation)
}

func TestFindAccountByIBANAcrossUsers(t *testing.T) {
	store := services.NewEntityStore()
	john := domain.NewUser("John", "Doe", "john@example.com")
	jane := domain.NewUser("Jane", "Doe", "jane@example.com")
	store.AddUser(john)
	store.AddUser(jane)

	account := domain.NewAccount("RO11BNKS0001", "EUR", jane.Email, domain.AccountClassic, decimal.Zero)
	store.AddAccountToUser(jane, account)

	assert.Same(t, account, store.FindAccountByIBAN("RO11BNKS0001"))
	assert.Same(t, jane, store.FindUserOwningAccount("RO11BNKS0001"))
	assert.Nil(t, store.FindAccountByIBAN("RO99BNKS9999"))
	assert.Nil(t, store.FindUserOwningAccount("RO99BNKS9999"))
}

func TestFindCard(t *testing.T) {
	store := services.NewEntityStore()
	john := domain.NewUser("John", "Doe", "john@example.com")
	store.AddUser(john)
	account := domain.NewAccount("RO11BNKS0001", "EUR", john.Email, domain.AccountClassic, decimal.Zero)
	store.AddAccountToUser(john, account)
	card := domain.NewCard("4000111122223333", john.Email, account.IBAN)
	store.AddCardToAccount(account, card)

	foundUser, foundAccount, foundCard := store.FindCard("4000111122223333")
	assert.Same(t, john, foundUser)
	assert.Same(t, account, foundAccount)
	assert.Same(t, card, foundCard)

	missUser, missAccount, missCard := store.FindCard("0000000000000000")
	assert.Nil(t, missUser)
	assert.Nil(t, missAccount)
	assert.Nil(t, missCard)
}

func TestAddCardToAccountIsIdempotentPerInstance(t *testing.T) {
	store := services.NewEntityStore()
	account := domain.NewAccount("RO11BNKS0001", "EUR", "john@example.com", domain.AccountClassic, decimal.Zero)
	card := domain.NewCard("4000111122223333", "john@example.com", account.IBAN)

	store.AddCardToAccount(account, card)
	store.AddCardToAccount(account, card)

	assert.Len(t, account.Cards, 1)
}

func TestRemoveAccountAndCard(t *testing.T) {
	store := services.NewEntityStore()
	john := domain.NewUser("John", "Doe", "john@example.com")
	store.AddUser(john)
	account := domain.NewAccount("RO11BNKS0001", "EUR", john.Email, domain.AccountClassic, decimal.Zero)
	store.AddAccountToUser(john, account)
	card := domain.NewCard("4000111122223333", john.Email, account.IBAN)
	store.AddCardToAccount(account, card)

	store.RemoveCardFromAccount(account, card)
	assert.Empty(t, account.Cards)
	// Removing again is a no-op.
	store.RemoveCardFromAccount(account, card)

	store.RemoveAccountFromUser(john, account)
	assert.Empty(t, john.Accounts)
	store.RemoveAccountFromUser(john, account)
}
