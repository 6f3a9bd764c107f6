package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionKind tags each journal record variant.
type TransactionKind string

const (
	KindAccountCreated      TransactionKind = "accountCreated"
	KindCardCreated         TransactionKind = "cardCreated"
	KindCardDestroyed       TransactionKind = "cardDestroyed"
	KindMoneySent           TransactionKind = "moneySent"
	KindMoneyReceived       TransactionKind = "moneyReceived"
	KindCardPayment         TransactionKind = "cardPayment"
	KindInsufficientFunds   TransactionKind = "insufficientFunds"
	KindMinBalanceWarning   TransactionKind = "minBalanceWarning"
	KindCardFrozen          TransactionKind = "cardFrozen"
	KindSplitSuccess        TransactionKind = "splitSuccess"
	KindSplitError          TransactionKind = "splitError"
	KindAccountDeleteError  TransactionKind = "accountDeleteError"
	KindInterestRateChanged TransactionKind = "interestRateChanged"
)

// Transaction is an immutable journal record. Each variant carries only the
// fields meaningful to it; never mutate a record after it has been appended.
type Transaction interface {
	Kind() TransactionKind
	When() int64
	Description() string
}

// AccountScoped is implemented by the variants tied to exactly one account.
// Reports use it to match records against an IBAN.
type AccountScoped interface {
	Account() string
}

// AccountCreated records a new account on its owner's journal.
type AccountCreated struct {
	Timestamp int64
	IBAN      string
}

func (t AccountCreated) Kind() TransactionKind { return KindAccountCreated }
func (t AccountCreated) When() int64           { return t.Timestamp }
func (t AccountCreated) Description() string   { return "New account created" }
func (t AccountCreated) Account() string       { return t.IBAN }

// CardCreated records a freshly attached card, including one-time replacements.
type CardCreated struct {
	Timestamp  int64
	CardNumber string
	OwnerEmail string
	IBAN       string
}

func (t CardCreated) Kind() TransactionKind { return KindCardCreated }
func (t CardCreated) When() int64           { return t.Timestamp }
func (t CardCreated) Description() string   { return "New card created" }
func (t CardCreated) Account() string       { return t.IBAN }

// CardDestroyed records a card removal, whether explicit or as part of
// one-time card replacement or account deletion.
type CardDestroyed struct {
	Timestamp  int64
	CardNumber string
	OwnerEmail string
	IBAN       string
}

func (t CardDestroyed) Kind() TransactionKind { return KindCardDestroyed }
func (t CardDestroyed) When() int64           { return t.Timestamp }
func (t CardDestroyed) Description() string   { return "The card has been destroyed" }
func (t CardDestroyed) Account() string       { return t.IBAN }

// MoneySent is the sender-side record of a transfer. Note holds the free-text
// description supplied with the command.
type MoneySent struct {
	Timestamp    int64
	SenderIBAN   string
	ReceiverIBAN string
	Amount       decimal.Decimal
	CurrencyCode string
	Note         string
}

func (t MoneySent) Kind() TransactionKind { return KindMoneySent }
func (t MoneySent) When() int64           { return t.Timestamp }
func (t MoneySent) Description() string   { return t.Note }

// MoneyReceived is the receiver-side record of a transfer, denominated in the
// receiver's currency.
type MoneyReceived struct {
	Timestamp    int64
	SenderIBAN   string
	ReceiverIBAN string
	Amount       decimal.Decimal
	CurrencyCode string
	Note         string
}

func (t MoneyReceived) Kind() TransactionKind { return KindMoneyReceived }
func (t MoneyReceived) When() int64           { return t.Timestamp }
func (t MoneyReceived) Description() string   { return t.Note }

// CardPayment records a successful online payment, in the account's currency.
type CardPayment struct {
	Timestamp int64
	Amount    decimal.Decimal
	Merchant  string
	IBAN      string
}

func (t CardPayment) Kind() TransactionKind { return KindCardPayment }
func (t CardPayment) When() int64           { return t.Timestamp }
func (t CardPayment) Description() string   { return "Card payment" }
func (t CardPayment) Account() string       { return t.IBAN }

// InsufficientFunds records a payment or transfer rejected for lack of funds.
type InsufficientFunds struct {
	Timestamp int64
	IBAN      string
}

func (t InsufficientFunds) Kind() TransactionKind { return KindInsufficientFunds }
func (t InsufficientFunds) When() int64           { return t.Timestamp }
func (t InsufficientFunds) Description() string   { return "Insufficient funds" }
func (t InsufficientFunds) Account() string       { return t.IBAN }

// MinBalanceWarning records that the balance hit the freeze threshold.
type MinBalanceWarning struct {
	Timestamp int64
	IBAN      string
}

func (t MinBalanceWarning) Kind() TransactionKind { return KindMinBalanceWarning }
func (t MinBalanceWarning) When() int64           { return t.Timestamp }
func (t MinBalanceWarning) Description() string {
	return "You have reached the minimum amount of funds, the card will be frozen"
}
func (t MinBalanceWarning) Account() string { return t.IBAN }

// CardFrozen records a payment attempt with a frozen card.
type CardFrozen struct {
	Timestamp int64
	IBAN      string
}

func (t CardFrozen) Kind() TransactionKind { return KindCardFrozen }
func (t CardFrozen) When() int64           { return t.Timestamp }
func (t CardFrozen) Description() string   { return "The card is frozen" }
func (t CardFrozen) Account() string       { return t.IBAN }

// SplitSuccess records one participant's share of a completed split payment.
// Total is the full charge; Share is this account's equal part, both in the
// split's currency.
type SplitSuccess struct {
	Timestamp    int64
	Total        decimal.Decimal
	Share        decimal.Decimal
	CurrencyCode string
	Involved     []string
}

func (t SplitSuccess) Kind() TransactionKind { return KindSplitSuccess }
func (t SplitSuccess) When() int64           { return t.Timestamp }
func (t SplitSuccess) Description() string {
	return fmt.Sprintf("Split payment of %s %s", t.Total.StringFixed(2), t.CurrencyCode)
}
func (t SplitSuccess) Participants() []string { return t.Involved }

// SplitError records a rejected split payment. FaultyIBAN names the last
// account found unable to cover its share during the scan.
type SplitError struct {
	Timestamp    int64
	Total        decimal.Decimal
	Share        decimal.Decimal
	CurrencyCode string
	FaultyIBAN   string
	Involved     []string
}

func (t SplitError) Kind() TransactionKind { return KindSplitError }
func (t SplitError) When() int64           { return t.Timestamp }
func (t SplitError) Description() string {
	return fmt.Sprintf("Split payment of %s %s", t.Total.StringFixed(2), t.CurrencyCode)
}

// Error is the per-participant failure message.
func (t SplitError) Error() string {
	return fmt.Sprintf("Account %s has insufficient funds for a split payment.", t.FaultyIBAN)
}
func (t SplitError) Participants() []string { return t.Involved }

// AccountDeleteError records a deletion attempt on an account still holding funds.
type AccountDeleteError struct {
	Timestamp int64
}

func (t AccountDeleteError) Kind() TransactionKind { return KindAccountDeleteError }
func (t AccountDeleteError) When() int64           { return t.Timestamp }
func (t AccountDeleteError) Description() string {
	return "The account couldn't be deleted - there are funds remaining"
}

// InterestRateChanged records a rate update on a savings account.
type InterestRateChanged struct {
	Timestamp int64
	Rate      decimal.Decimal
}

func (t InterestRateChanged) Kind() TransactionKind { return KindInterestRateChanged }
func (t InterestRateChanged) When() int64           { return t.Timestamp }
func (t InterestRateChanged) Description() string {
	return fmt.Sprintf("The interest rate of the account changed to %s", t.Rate.String())
}
