package dto

import (
	"fmt"

	"banksim/internal/core/domain"
)

// Response is the observable result of one command.
type Response struct {
	Command   string `json:"command"`
	Timestamp int64  `json:"timestamp"`
	Output    any    `json:"output"`
}

// DescriptionOutput is the error shape used by commands that report a
// human-readable description (card not found, non-savings interest ops).
type DescriptionOutput struct {
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
}

// ErrorOutput is the error shape used by deleteAccount and spendingsReport.
type ErrorOutput struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// SuccessOutput confirms a completed deleteAccount.
type SuccessOutput struct {
	Success   string `json:"success"`
	Timestamp int64  `json:"timestamp"`
}

// CardView is the printUsers rendering of one card.
type CardView struct {
	CardNumber string `json:"cardNumber"`
	Status     string `json:"status"`
}

// AccountView is the printUsers rendering of one account.
type AccountView struct {
	IBAN     string     `json:"IBAN"`
	Balance  float64    `json:"balance"`
	Currency string     `json:"currency"`
	Type     string     `json:"type"`
	Cards    []CardView `json:"cards"`
}

// UserView is the printUsers rendering of one user.
type UserView struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Accounts  []AccountView `json:"accounts"`
}

// MerchantTotal aggregates card-payment spend for one merchant.
type MerchantTotal struct {
	Commerciant string  `json:"commerciant"`
	Total       float64 `json:"total"`
}

// ReportOutput is the payload of report and spendingsReport responses.
type ReportOutput struct {
	IBAN         string          `json:"IBAN"`
	Balance      float64         `json:"balance"`
	Currency     string          `json:"currency"`
	Transactions []any           `json:"transactions"`
	Commerciants []MerchantTotal `json:"commerciants,omitempty"`
}

// ToUserView renders a user with accounts and cards for printUsers.
func ToUserView(user *domain.User) UserView {
	accounts := make([]AccountView, 0, len(user.Accounts))
	for _, account := range user.Accounts {
		cards := make([]CardView, 0, len(account.Cards))
		for _, card := range account.Cards {
			cards = append(cards, CardView{
				CardNumber: card.Number,
				Status:     string(card.Status),
			})
		}
		accounts = append(accounts, AccountView{
			IBAN:     account.IBAN,
			Balance:  account.Balance.InexactFloat64(),
			Currency: account.CurrencyCode,
			Type:     string(account.Kind),
			Cards:    cards,
		})
	}
	return UserView{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Accounts:  accounts,
	}
}

// Transaction views, one JSON shape per record variant. Monetary amounts are
// bare numbers for card payments and split shares, and "<amount> <currency>"
// strings for transfers.

type baseTxnView struct {
	Timestamp   int64  `json:"timestamp"`
	Description string `json:"description"`
}

type cardTxnView struct {
	baseTxnView
	Card       string `json:"card"`
	CardHolder string `json:"cardHolder"`
	Account    string `json:"account"`
}

type transferTxnView struct {
	baseTxnView
	SenderIBAN   string `json:"senderIBAN"`
	ReceiverIBAN string `json:"receiverIBAN"`
	Amount       string `json:"amount"`
	TransferType string `json:"transferType"`
}

type cardPaymentTxnView struct {
	baseTxnView
	Amount      float64 `json:"amount"`
	Commerciant string  `json:"commerciant"`
}

type splitTxnView struct {
	baseTxnView
	Currency         string   `json:"currency"`
	Amount           float64  `json:"amount"`
	InvolvedAccounts []string `json:"involvedAccounts"`
	Error            string   `json:"error,omitempty"`
}

// ToTransactionView renders one journal record into its variant view.
func ToTransactionView(txn domain.Transaction) any {
	base := baseTxnView{Timestamp: txn.When(), Description: txn.Description()}
	switch t := txn.(type) {
	case domain.CardCreated:
		return cardTxnView{baseTxnView: base, Card: t.CardNumber, CardHolder: t.OwnerEmail, Account: t.IBAN}
	case domain.CardDestroyed:
		return cardTxnView{baseTxnView: base, Card: t.CardNumber, CardHolder: t.OwnerEmail, Account: t.IBAN}
	case domain.MoneySent:
		return transferTxnView{
			baseTxnView:  base,
			SenderIBAN:   t.SenderIBAN,
			ReceiverIBAN: t.ReceiverIBAN,
			Amount:       fmt.Sprintf("%s %s", t.Amount.String(), t.CurrencyCode),
			TransferType: "sent",
		}
	case domain.MoneyReceived:
		return transferTxnView{
			baseTxnView:  base,
			SenderIBAN:   t.SenderIBAN,
			ReceiverIBAN: t.ReceiverIBAN,
			Amount:       fmt.Sprintf("%s %s", t.Amount.String(), t.CurrencyCode),
			TransferType: "received",
		}
	case domain.CardPayment:
		return cardPaymentTxnView{baseTxnView: base, Amount: t.Amount.InexactFloat64(), Commerciant: t.Merchant}
	case domain.SplitSuccess:
		return splitTxnView{
			baseTxnView:      base,
			Currency:         t.CurrencyCode,
			Amount:           t.Share.InexactFloat64(),
			InvolvedAccounts: t.Involved,
		}
	case domain.SplitError:
		return splitTxnView{
			baseTxnView:      base,
			Currency:         t.CurrencyCode,
			Amount:           t.Share.InexactFloat64(),
			InvolvedAccounts: t.Involved,
			Error:            t.Error(),
		}
	default:
		// accountCreated, insufficientFunds, warnings, frozen, delete errors
		// and interest changes carry nothing beyond their description.
		return base
	}
}

// ToTransactionViews renders a slice of records in order.
func ToTransactionViews(txns []domain.Transaction) []any {
	views := make([]any, 0, len(txns))
	for _, txn := range txns {
		views = append(views, ToTransactionView(txn))
	}
	return views
}
