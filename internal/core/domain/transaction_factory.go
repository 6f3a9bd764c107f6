package domain

import "github.com/shopspring/decimal"

// Constructors for every journal record variant. Each returns a fully
// populated immutable value; services never build records by hand.

func NewAccountCreated(timestamp int64, iban string) Transaction {
	return AccountCreated{Timestamp: timestamp, IBAN: iban}
}

func NewCardCreated(timestamp int64, cardNumber, ownerEmail, iban string) Transaction {
	return CardCreated{Timestamp: timestamp, CardNumber: cardNumber, OwnerEmail: ownerEmail, IBAN: iban}
}

func NewCardDestroyed(timestamp int64, cardNumber, ownerEmail, iban string) Transaction {
	return CardDestroyed{Timestamp: timestamp, CardNumber: cardNumber, OwnerEmail: ownerEmail, IBAN: iban}
}

func NewMoneySent(timestamp int64, senderIBAN, receiverIBAN string, amount decimal.Decimal, currencyCode, note string) Transaction {
	return MoneySent{
		Timestamp:    timestamp,
		SenderIBAN:   senderIBAN,
		ReceiverIBAN: receiverIBAN,
		Amount:       amount,
		CurrencyCode: currencyCode,
		Note:         note,
	}
}

func NewMoneyReceived(timestamp int64, senderIBAN, receiverIBAN string, amount decimal.Decimal, currencyCode, note string) Transaction {
	return MoneyReceived{
		Timestamp:    timestamp,
		SenderIBAN:   senderIBAN,
		ReceiverIBAN: receiverIBAN,
		Amount:       amount,
		CurrencyCode: currencyCode,
		Note:         note,
	}
}

func NewCardPayment(timestamp int64, amount decimal.Decimal, merchant, iban string) Transaction {
	return CardPayment{Timestamp: timestamp, Amount: amount, Merchant: merchant, IBAN: iban}
}

func NewInsufficientFunds(timestamp int64, iban string) Transaction {
	return InsufficientFunds{Timestamp: timestamp, IBAN: iban}
}

func NewMinBalanceWarning(timestamp int64, iban string) Transaction {
	return MinBalanceWarning{Timestamp: timestamp, IBAN: iban}
}

func NewCardFrozen(timestamp int64, iban string) Transaction {
	return CardFrozen{Timestamp: timestamp, IBAN: iban}
}

func NewSplitSuccess(timestamp int64, total, share decimal.Decimal, currencyCode string, involved []string) Transaction {
	return SplitSuccess{
		Timestamp:    timestamp,
		Total:        total,
		Share:        share,
		CurrencyCode: currencyCode,
		Involved:     involved,
	}
}

func NewSplitError(timestamp int64, total, share decimal.Decimal, currencyCode, faultyIBAN string, involved []string) Transaction {
	return SplitError{
		Timestamp:    timestamp,
		Total:        total,
		Share:        share,
		CurrencyCode: currencyCode,
		FaultyIBAN:   faultyIBAN,
		Involved:     involved,
	}
}

func NewAccountDeleteError(timestamp int64) Transaction {
	return AccountDeleteError{Timestamp: timestamp}
}

func NewInterestRateChanged(timestamp int64, rate decimal.Decimal) Transaction {
	return InterestRateChanged{Timestamp: timestamp, Rate: rate}
}
