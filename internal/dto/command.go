package dto

import "github.com/shopspring/decimal"

// Command is one timestamped instruction in a batch. Only the fields relevant
// to a given command name are populated; unknown command names are ignored.
type Command struct {
	Command        string          `json:"command" binding:"required"`
	Timestamp      int64           `json:"timestamp"`
	Email          string          `json:"email,omitempty"`
	Account        string          `json:"account,omitempty"`
	AccountType    string          `json:"accountType,omitempty"`
	CurrencyCode   string          `json:"currency,omitempty"`
	InterestRate   decimal.Decimal `json:"interestRate,omitempty"`
	Amount         decimal.Decimal `json:"amount,omitempty"`
	CardNumber     string          `json:"cardNumber,omitempty"`
	Description    string          `json:"description,omitempty"`
	Commerciant    string          `json:"commerciant,omitempty"`
	Receiver       string          `json:"receiver,omitempty"`
	Accounts       []string        `json:"accounts,omitempty"`
	Alias          string          `json:"alias,omitempty"`
	StartTimestamp int64           `json:"startTimestamp,omitempty"`
	EndTimestamp   int64           `json:"endTimestamp,omitempty"`
}

// UserSeed registers one user before the batch runs.
type UserSeed struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// ExchangeRateSeed declares one conversion edge of the rate graph.
type ExchangeRateSeed struct {
	From string          `json:"from" binding:"required"`
	To   string          `json:"to" binding:"required"`
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// SimulationRequest is a full batch: initial users, the rate graph, and the
// command sequence to apply in order.
type SimulationRequest struct {
	Users         []UserSeed         `json:"users" binding:"required,dive"`
	ExchangeRates []ExchangeRateSeed `json:"exchangeRates" binding:"dive"`
	Commands      []Command          `json:"commands" binding:"required,dive"`
}
