package domain

import "github.com/shopspring/decimal"

// ExchangeRate is one known conversion edge between two currencies.
// Every edge is implicitly bidirectional: the inverse edge carries rate 1/Rate.
type ExchangeRate struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
}
