package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"banksim/internal/apperrors"
	"banksim/internal/core/domain"
	"banksim/internal/core/ports"
	"banksim/internal/dto"
)

// freezeThreshold is how close (in account currency) the balance may get to
// the minimum before checkCardStatus freezes the card.
var freezeThreshold = decimal.NewFromInt(30)

// LedgerService applies commands one at a time against the entity store, the
// rate resolver and the journal. Every command is isolated: a failure leaves
// no partial mutation behind, and no error escapes command execution.
type LedgerService struct {
	store   *EntityStore
	rates   *RateResolver
	journal *Journal
	reports *ReportService
	idgen   ports.IdentifierGenerator
}

// NewLedgerService wires the ledger engine to its collaborators.
func NewLedgerService(store *EntityStore, rates *RateResolver, journal *Journal, reports *ReportService, idgen ports.IdentifierGenerator) *LedgerService {
	return &LedgerService{
		store:   store,
		rates:   rates,
		journal: journal,
		reports: reports,
		idgen:   idgen,
	}
}

// ProcessBatch applies the commands in input order and collects the responses
// of commands with observable output. The identifier generator is reset after
// the batch so identical inputs replay identically.
func (s *LedgerService) ProcessBatch(commands []dto.Command) []dto.Response {
	responses := make([]dto.Response, 0, len(commands))
	for _, cmd := range commands {
		if resp := s.Apply(cmd); resp != nil {
			responses = append(responses, *resp)
		}
	}
	s.idgen.Reset()
	return responses
}

// Apply executes a single command. Unknown command names are a no-op.
func (s *LedgerService) Apply(cmd dto.Command) *dto.Response {
	switch cmd.Command {
	case "printUsers":
		return s.printUsers(cmd)
	case "addAccount":
		s.addAccount(cmd)
	case "createCard":
		s.createCard(cmd, false)
	case "createOneTimeCard":
		s.createCard(cmd, true)
	case "addFunds":
		s.addFunds(cmd)
	case "deleteAccount":
		return s.deleteAccount(cmd)
	case "deleteCard":
		s.deleteCard(cmd)
	case "payOnline":
		return s.payOnline(cmd)
	case "sendMoney":
		s.sendMoney(cmd)
	case "setAlias":
		s.setAlias(cmd)
	case "printTransactions":
		return s.printTransactions(cmd)
	case "setMinimumBalance":
		s.setMinimumBalance(cmd)
	case "checkCardStatus":
		return s.checkCardStatus(cmd)
	case "splitPayment":
		s.splitPayment(cmd)
	case "report":
		resp := s.reports.Generate(cmd, false)
		return &resp
	case "spendingsReport":
		resp := s.reports.Generate(cmd, true)
		return &resp
	case "addInterest":
		return s.addInterest(cmd)
	case "changeInterestRate":
		return s.changeInterestRate(cmd)
	}
	return nil
}

func (s *LedgerService) printUsers(cmd dto.Command) *dto.Response {
	users := s.store.Users()
	views := make([]dto.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, dto.ToUserView(user))
	}
	return &dto.Response{Command: cmd.Command, Timestamp: cmd.Timestamp, Output: views}
}

func (s *LedgerService) addAccount(cmd dto.Command) {
	user := s.store.FindUserByEmail(cmd.Email)
	if user == nil {
		return
	}

	kind, err := accountKind(cmd.AccountType)
	if err != nil {
		return
	}

	account := domain.NewAccount(s.idgen.GenerateIBAN(), cmd.CurrencyCode, cmd.Email, kind, cmd.InterestRate)
	s.store.AddAccountToUser(user, account)
	s.journal.Append(user.Email, domain.NewAccountCreated(cmd.Timestamp, account.IBAN))
}

func (s *LedgerService) createCard(cmd dto.Command, oneTime bool) {
	user := s.store.FindUserByEmail(cmd.Email)
	if user == nil {
		return
	}
	account := s.store.FindAccountByIBAN(cmd.Account)
	if account == nil {
		return
	}

	number := s.idgen.GenerateCardNumber()
	var card *domain.Card
	if oneTime {
		card = domain.NewOneTimeCard(number, user.Email, account.IBAN)
	} else {
		card = domain.NewCard(number, user.Email, account.IBAN)
	}
	s.store.AddCardToAccount(account, card)
	s.journal.Append(user.Email, domain.NewCardCreated(cmd.Timestamp, card.Number, user.Email, account.IBAN))
}

func (s *LedgerService) addFunds(cmd dto.Command) {
	if account := s.store.FindAccountByIBAN(cmd.Account); account != nil {
		account.Deposit(cmd.Amount)
	}
}

func (s *LedgerService) deleteAccount(cmd dto.Command) *dto.Response {
	user := s.store.FindUserByEmail(cmd.Email)
	if user == nil {
		return nil
	}
	account := s.store.FindAccountByIBAN(cmd.Account)
	if account == nil {
		return nil
	}

	if err := ensureDeletable(account); errors.Is(err, apperrors.ErrOutstandingBalance) {
		s.journal.Append(user.Email, domain.NewAccountDeleteError(cmd.Timestamp))
		return &dto.Response{
			Command:   cmd.Command,
			Timestamp: cmd.Timestamp,
			Output: dto.ErrorOutput{
				Error:     "Account couldn't be deleted - see transactions for details",
				Timestamp: cmd.Timestamp,
			},
		}
	}

	for _, card := range account.Cards {
		s.journal.Append(user.Email, domain.NewCardDestroyed(cmd.Timestamp, card.Number, user.Email, account.IBAN))
	}
	account.Cards = nil
	s.store.RemoveAccountFromUser(user, account)

	return &dto.Response{
		Command:   cmd.Command,
		Timestamp: cmd.Timestamp,
		Output:    dto.SuccessOutput{Success: "Account deleted", Timestamp: cmd.Timestamp},
	}
}

func (s *LedgerService) deleteCard(cmd dto.Command) {
	user, account, card := s.store.FindCard(cmd.CardNumber)
	if card == nil {
		return
	}
	s.journal.Append(user.Email, domain.NewCardDestroyed(cmd.Timestamp, card.Number, user.Email, account.IBAN))
	s.store.RemoveCardFromAccount(account, card)
}

func (s *LedgerService) setAlias(cmd dto.Command) {
	if s.store.FindUserByEmail(cmd.Email) == nil {
		return
	}
	if account := s.store.FindAccountByIBAN(cmd.Account); account != nil {
		account.Alias = cmd.Alias
	}
}

func (s *LedgerService) setMinimumBalance(cmd dto.Command) {
	if account := s.store.FindAccountByIBAN(cmd.Account); account != nil {
		account.MinBalance = cmd.Amount
	}
}

func (s *LedgerService) checkCardStatus(cmd dto.Command) *dto.Response {
	user, account, card := s.store.FindCard(cmd.CardNumber)
	if card == nil {
		return &dto.Response{
			Command:   cmd.Command,
			Timestamp: cmd.Timestamp,
			Output:    dto.DescriptionOutput{Description: "Card not found", Timestamp: cmd.Timestamp},
		}
	}

	if account.Balance.Sub(account.MinBalance).LessThanOrEqual(freezeThreshold) {
		s.journal.Append(user.Email, domain.NewMinBalanceWarning(cmd.Timestamp, account.IBAN))
		card.Freeze()
	}
	return nil
}

func (s *LedgerService) payOnline(cmd dto.Command) *dto.Response {
	user := s.store.FindUserByEmail(cmd.Email)
	if user == nil {
		return nil
	}

	// The card must belong to one of the payer's own accounts.
	account, card, err := findUserCard(user, cmd.CardNumber)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &dto.Response{
			Command:   cmd.Command,
			Timestamp: cmd.Timestamp,
			Output:    dto.DescriptionOutput{Description: "Card not found", Timestamp: cmd.Timestamp},
		}
	}

	if err := ensureUsable(card); errors.Is(err, apperrors.ErrCardFrozen) {
		s.journal.Append(user.Email, domain.NewCardFrozen(cmd.Timestamp, account.IBAN))
		return nil
	}

	amount := s.rates.Convert(cmd.Amount, cmd.CurrencyCode, account.CurrencyCode)

	if err := ensureFunds(account, amount); errors.Is(err, apperrors.ErrInsufficientFunds) {
		s.journal.Append(user.Email, domain.NewInsufficientFunds(cmd.Timestamp, account.IBAN))
		return nil
	}
	if account.Balance.LessThanOrEqual(account.MinBalance) {
		s.journal.Append(user.Email, domain.NewMinBalanceWarning(cmd.Timestamp, account.IBAN))
		card.Freeze()
		return nil
	}

	account.Spend(amount)
	s.journal.Append(user.Email, domain.NewCardPayment(cmd.Timestamp, amount, cmd.Commerciant, account.IBAN))

	if card.OneTime {
		s.replaceOneTimeCard(cmd.Timestamp, user, account, card)
	}
	return nil
}

// replaceOneTimeCard destroys a spent one-time card and mints a fresh unused
// one on the same account.
func (s *LedgerService) replaceOneTimeCard(timestamp int64, user *domain.User, account *domain.Account, card *domain.Card) {
	card.MarkUsed()

	s.store.RemoveCardFromAccount(account, card)
	s.journal.Append(user.Email, domain.NewCardDestroyed(timestamp, card.Number, user.Email, account.IBAN))

	replacement := domain.NewOneTimeCard(s.idgen.GenerateCardNumber(), user.Email, account.IBAN)
	s.store.AddCardToAccount(account, replacement)
	s.journal.Append(user.Email, domain.NewCardCreated(timestamp, replacement.Number, user.Email, account.IBAN))
}

func (s *LedgerService) sendMoney(cmd dto.Command) {
	sender := s.store.FindAccountByIBAN(cmd.Account)
	receiver := s.store.FindAccountByIBAN(cmd.Receiver)
	if sender == nil || receiver == nil {
		return
	}

	received := cmd.Amount
	if sender.CurrencyCode != receiver.CurrencyCode {
		rate := s.rates.Resolve(sender.CurrencyCode, receiver.CurrencyCode)
		if rate.IsZero() {
			return
		}
		received = cmd.Amount.Mul(rate)
	}

	// Sufficiency is checked against the amount in the sender's currency.
	if err := ensureFunds(sender, cmd.Amount); errors.Is(err, apperrors.ErrInsufficientFunds) {
		senderUser := s.store.FindUserOwningAccount(sender.IBAN)
		s.journal.Append(senderUser.Email, domain.NewInsufficientFunds(cmd.Timestamp, sender.IBAN))
		return
	}

	sender.Spend(cmd.Amount)
	receiver.Deposit(received)

	s.journal.Append(sender.OwnerEmail,
		domain.NewMoneySent(cmd.Timestamp, sender.IBAN, receiver.IBAN, cmd.Amount, sender.CurrencyCode, cmd.Description))
	s.journal.Append(receiver.OwnerEmail,
		domain.NewMoneyReceived(cmd.Timestamp, sender.IBAN, receiver.IBAN, received, receiver.CurrencyCode, cmd.Description))
}

func (s *LedgerService) splitPayment(cmd dto.Command) {
	if len(cmd.Accounts) == 0 {
		return
	}
	share := cmd.Amount.Div(decimal.NewFromInt(int64(len(cmd.Accounts))))

	// First pass: every account must cover its converted share, otherwise the
	// whole split fails. The reported IBAN is the last insufficient one found
	// during the scan, not the lowest-funded.
	canSplit := true
	faultyIBAN := ""
	for _, iban := range cmd.Accounts {
		account := s.store.FindAccountByIBAN(iban)
		if account == nil {
			return
		}
		converted := s.rates.Convert(share, cmd.CurrencyCode, account.CurrencyCode)
		if err := ensureFunds(account, converted); err != nil {
			canSplit = false
			faultyIBAN = iban
		}
	}

	if !canSplit {
		for _, iban := range cmd.Accounts {
			owner := s.store.FindUserOwningAccount(iban)
			if owner == nil {
				continue
			}
			s.journal.Append(owner.Email,
				domain.NewSplitError(cmd.Timestamp, cmd.Amount, share, cmd.CurrencyCode, faultyIBAN, cmd.Accounts))
		}
		return
	}

	for _, iban := range cmd.Accounts {
		account := s.store.FindAccountByIBAN(iban)
		owner := s.store.FindUserOwningAccount(iban)
		converted := s.rates.Convert(share, cmd.CurrencyCode, account.CurrencyCode)
		account.Spend(converted)
		s.journal.Append(owner.Email,
			domain.NewSplitSuccess(cmd.Timestamp, cmd.Amount, share, cmd.CurrencyCode, cmd.Accounts))
	}
}

func (s *LedgerService) addInterest(cmd dto.Command) *dto.Response {
	account := s.store.FindAccountByIBAN(cmd.Account)
	if account == nil {
		return nil
	}
	if err := ensureSavings(account); errors.Is(err, apperrors.ErrNotSavingsAccount) {
		return s.notSavingsResponse(cmd)
	}
	account.Deposit(account.InterestRate.Mul(account.Balance))
	return nil
}

func (s *LedgerService) changeInterestRate(cmd dto.Command) *dto.Response {
	account := s.store.FindAccountByIBAN(cmd.Account)
	user := s.store.FindUserOwningAccount(cmd.Account)
	if account == nil || user == nil {
		return nil
	}
	if err := ensureSavings(account); errors.Is(err, apperrors.ErrNotSavingsAccount) {
		return s.notSavingsResponse(cmd)
	}
	account.InterestRate = cmd.InterestRate
	s.journal.Append(user.Email, domain.NewInterestRateChanged(cmd.Timestamp, cmd.InterestRate))
	return nil
}

func (s *LedgerService) notSavingsResponse(cmd dto.Command) *dto.Response {
	return &dto.Response{
		Command:   cmd.Command,
		Timestamp: cmd.Timestamp,
		Output: dto.DescriptionOutput{
			Description: "This is not a savings account",
			Timestamp:   cmd.Timestamp,
		},
	}
}

func (s *LedgerService) printTransactions(cmd dto.Command) *dto.Response {
	user := s.store.FindUserByEmail(cmd.Email)
	if user == nil {
		return nil
	}

	txns := make([]domain.Transaction, len(user.Transactions))
	copy(txns, user.Transactions)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].When() < txns[j].When()
	})

	return &dto.Response{
		Command:   cmd.Command,
		Timestamp: cmd.Timestamp,
		Output:    dto.ToTransactionViews(txns),
	}
}

// Precondition checks. Each reports its failure as a wrapped apperrors
// sentinel so callers branch with errors.Is and map the failure to the
// command's observable outcome.

func accountKind(accountType string) (domain.AccountKind, error) {
	switch accountType {
	case "classic":
		return domain.AccountClassic, nil
	case "savings":
		return domain.AccountSavings, nil
	default:
		return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, accountType)
	}
}

func findUserCard(user *domain.User, number string) (*domain.Account, *domain.Card, error) {
	for _, account := range user.Accounts {
		for _, card := range account.Cards {
			if card.Number == number {
				return account, card, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("%w: card %s", apperrors.ErrNotFound, number)
}

func ensureUsable(card *domain.Card) error {
	if card.IsFrozen() {
		return fmt.Errorf("%w: card %s", apperrors.ErrCardFrozen, card.Number)
	}
	return nil
}

func ensureFunds(account *domain.Account, amount decimal.Decimal) error {
	if account.Balance.LessThan(amount) {
		return fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, account.IBAN)
	}
	return nil
}

func ensureDeletable(account *domain.Account) error {
	if !account.Balance.IsZero() {
		return fmt.Errorf("%w: account %s", apperrors.ErrOutstandingBalance, account.IBAN)
	}
	return nil
}

func ensureSavings(account *domain.Account) error {
	if !account.IsSavings() {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotSavingsAccount, account.IBAN)
	}
	return nil
}
