package services

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"banksim/internal/core/domain"
	"banksim/internal/dto"
)

// TransactionFilter decides whether a journal record belongs to a report for
// the given IBAN.
type TransactionFilter func(txn domain.Transaction, iban string) bool

// ReportFilter matches a record to an IBAN through its own account field, or,
// for records without one, through the sender, receiver or split-participant
// lists.
func ReportFilter(txn domain.Transaction, iban string) bool {
	if scoped, ok := txn.(domain.AccountScoped); ok {
		return scoped.Account() == iban
	}
	switch t := txn.(type) {
	case domain.MoneySent:
		return t.SenderIBAN == iban || t.ReceiverIBAN == iban
	case domain.MoneyReceived:
		return t.SenderIBAN == iban || t.ReceiverIBAN == iban
	case domain.SplitSuccess:
		return slices.Contains(t.Involved, iban)
	case domain.SplitError:
		return slices.Contains(t.Involved, iban)
	}
	return false
}

// SpendingsFilter matches only card payments made from the given account.
func SpendingsFilter(txn domain.Transaction, iban string) bool {
	payment, ok := txn.(domain.CardPayment)
	return ok && payment.IBAN == iban
}

// ReportService is a read-only consumer of the journal and entity store.
type ReportService struct {
	store   *EntityStore
	journal *Journal
}

// NewReportService creates a report engine over the given store and journal.
func NewReportService(store *EntityStore, journal *Journal) *ReportService {
	return &ReportService{store: store, journal: journal}
}

// Generate builds the report (or spendings report) response for a command
// naming an IBAN and a [startTimestamp, endTimestamp] window.
func (s *ReportService) Generate(cmd dto.Command, spendings bool) dto.Response {
	resp := dto.Response{Command: cmd.Command, Timestamp: cmd.Timestamp}

	account := s.store.FindAccountByIBAN(cmd.Account)
	if account == nil {
		resp.Output = dto.DescriptionOutput{Description: "Account not found", Timestamp: cmd.Timestamp}
		return resp
	}
	if spendings && account.IsSavings() {
		resp.Output = dto.ErrorOutput{Error: "This kind of report is not supported for a saving account"}
		return resp
	}

	owner := s.store.FindUserOwningAccount(cmd.Account)
	filter := ReportFilter
	if spendings {
		filter = SpendingsFilter
	}

	var filtered []domain.Transaction
	for _, txn := range s.journal.AllFor(owner.Email) {
		if txn.When() < cmd.StartTimestamp || txn.When() > cmd.EndTimestamp {
			continue
		}
		if filter(txn, cmd.Account) {
			filtered = append(filtered, txn)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].When() < filtered[j].When()
	})

	output := dto.ReportOutput{
		IBAN:         account.IBAN,
		Balance:      account.Balance.InexactFloat64(),
		Currency:     account.CurrencyCode,
		Transactions: dto.ToTransactionViews(filtered),
	}
	if spendings {
		output.Commerciants = merchantTotals(filtered)
	}
	resp.Output = output
	return resp
}

// merchantTotals aggregates card-payment spend per merchant, alphabetically.
func merchantTotals(txns []domain.Transaction) []dto.MerchantTotal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		payment, ok := txn.(domain.CardPayment)
		if !ok {
			continue
		}
		totals[payment.Merchant] = totals[payment.Merchant].Add(payment.Amount)
	}
	merchants := make([]string, 0, len(totals))
	for merchant := range totals {
		merchants = append(merchants, merchant)
	}
	sort.Strings(merchants)

	result := make([]dto.MerchantTotal, 0, len(merchants))
	for _, merchant := range merchants {
		result = append(result, dto.MerchantTotal{
			Commerciant: merchant,
			Total:       totals[merchant].InexactFloat64(),
		})
	}
	return result
}
