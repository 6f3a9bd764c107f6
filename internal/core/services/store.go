package services

import (
	"fmt"

	"banksim/internal/apperrors"
	"banksim/internal/core/domain"
)

// EntityStore owns the in-memory users, accounts and cards for one run.
// Lookups are linear scans; IBANs and card numbers are globally unique so
// lookup by key is well defined. A miss is reported as nil, never an error.
type EntityStore struct {
	users []*domain.User
}

// NewEntityStore creates an empty store.
func NewEntityStore() *EntityStore {
	return &EntityStore{}
}

// AddUser registers a user. Each email registers at most once.
func (s *EntityStore) AddUser(user *domain.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", apperrors.ErrValidation)
	}
	if s.FindUserByEmail(user.Email) != nil {
		return fmt.Errorf("%w: user %s", apperrors.ErrDuplicate, user.Email)
	}
	s.users = append(s.users, user)
	return nil
}

// Users returns all users in registration order.
func (s *EntityStore) Users() []*domain.User {
	return s.users
}

// FindUserByEmail resolves a user by unique email, or nil.
func (s *EntityStore) FindUserByEmail(email string) *domain.User {
	for _, user := range s.users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

// FindAccountByIBAN resolves an account by IBAN across all users, or nil.
func (s *EntityStore) FindAccountByIBAN(iban string) *domain.Account {
	for _, user := range s.users {
		for _, account := range user.Accounts {
			if account.IBAN == iban {
				return account
			}
		}
	}
	return nil
}

// FindUserOwningAccount resolves the user holding the given IBAN, or nil.
func (s *EntityStore) FindUserOwningAccount(iban string) *domain.User {
	for _, user := range s.users {
		for _, account := range user.Accounts {
			if account.IBAN == iban {
				return user
			}
		}
	}
	return nil
}

// FindCard resolves a card by number across all users, returning the owning
// user and account alongside it. All three are nil on a miss.
func (s *EntityStore) FindCard(number string) (*domain.User, *domain.Account, *domain.Card) {
	for _, user := range s.users {
		for _, account := range user.Accounts {
			for _, card := range account.Cards {
				if card.Number == number {
					return user, account, card
				}
			}
		}
	}
	return nil, nil, nil
}

// AddAccountToUser attaches an account at the end of the user's list.
func (s *EntityStore) AddAccountToUser(user *domain.User, account *domain.Account) {
	if user == nil || account == nil {
		return
	}
	user.Accounts = append(user.Accounts, account)
}

// RemoveAccountFromUser detaches the account; no-op if it is not attached.
func (s *EntityStore) RemoveAccountFromUser(user *domain.User, account *domain.Account) {
	if user == nil || account == nil {
		return
	}
	for i, a := range user.Accounts {
		if a == account {
			user.Accounts = append(user.Accounts[:i], user.Accounts[i+1:]...)
			return
		}
	}
}

// AddCardToAccount attaches a card; no-op if the same card instance is
// already present.
func (s *EntityStore) AddCardToAccount(account *domain.Account, card *domain.Card) {
	if account == nil || card == nil {
		return
	}
	for _, c := range account.Cards {
		if c == card {
			return
		}
	}
	account.Cards = append(account.Cards, card)
}

// RemoveCardFromAccount detaches a card; no-op if it is not attached.
func (s *EntityStore) RemoveCardFromAccount(account *domain.Account, card *domain.Card) {
	if account == nil || card == nil {
		return
	}
	for i, c := range account.Cards {
		if c == card {
			account.Cards = append(account.Cards[:i], account.Cards[i+1:]...)
			return
		}
	}
}
