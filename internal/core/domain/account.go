package domain

import "github.com/shopspring/decimal"

// AccountKind distinguishes classic accounts from savings accounts.
type AccountKind string

const (
	AccountClassic AccountKind = "classic"
	AccountSavings AccountKind = "savings"
)

// Account is a single bank account identified by its IBAN.
// InterestRate is only meaningful for savings accounts; MinBalance defaults to
// zero and feeds the card-freeze threshold.
type Account struct {
	IBAN         string // unique key
	CurrencyCode string
	Balance      decimal.Decimal
	Kind         AccountKind
	InterestRate decimal.Decimal
	MinBalance   decimal.Decimal
	Alias        string
	OwnerEmail   string
	Cards        []*Card
}

// NewAccount creates an account with a zero balance.
func NewAccount(iban, currencyCode, ownerEmail string, kind AccountKind, interestRate decimal.Decimal) *Account {
	return &Account{
		IBAN:         iban,
		CurrencyCode: currencyCode,
		Balance:      decimal.Zero,
		Kind:         kind,
		InterestRate: interestRate,
		MinBalance:   decimal.Zero,
		OwnerEmail:   ownerEmail,
	}
}

// IsSavings reports whether the account accrues interest.
func (a *Account) IsSavings() bool {
	return a.Kind == AccountSavings
}

// Deposit credits the account.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Spend debits the account. Callers are responsible for the sufficiency check;
// Spend itself never rejects an amount.
func (a *Account) Spend(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}
