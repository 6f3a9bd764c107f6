package domain

// CardStatus is the lifecycle state of a card. Freezing is terminal: a frozen
// card is never reactivated, only destroyed.
type CardStatus string

const (
	CardActive       CardStatus = "active"
	CardFrozenStatus CardStatus = "frozen"
)

// Card is a payment card attached to one account. A one-time card is valid for
// a single successful payment, after which it is destroyed and replaced.
type Card struct {
	Number      string // unique key
	OwnerEmail  string
	AccountIBAN string
	Status      CardStatus
	OneTime     bool
	Used        bool
}

// NewCard creates an active standard card.
func NewCard(number, ownerEmail, accountIBAN string) *Card {
	return &Card{
		Number:      number,
		OwnerEmail:  ownerEmail,
		AccountIBAN: accountIBAN,
		Status:      CardActive,
	}
}

// NewOneTimeCard creates an active, unused one-time card.
func NewOneTimeCard(number, ownerEmail, accountIBAN string) *Card {
	card := NewCard(number, ownerEmail, accountIBAN)
	card.OneTime = true
	return card
}

// Freeze moves the card to its terminal frozen state.
func (c *Card) Freeze() {
	c.Status = CardFrozenStatus
}

// IsFrozen reports whether the card rejects payments.
func (c *Card) IsFrozen() bool {
	return c.Status == CardFrozenStatus
}

// MarkUsed flags a one-time card as spent.
func (c *Card) MarkUsed() {
	if c.OneTime {
		c.Used = true
	}
}
