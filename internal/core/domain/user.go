package domain

// User represents a registered customer of the bank.
// Accounts and Transactions are kept in arrival order; the transaction list is
// the user's journal and is append-only.
type User struct {
	FirstName    string
	LastName     string
	Email        string // unique key
	Accounts     []*Account
	Transactions []Transaction
}

// NewUser creates a user with empty account and journal lists.
func NewUser(firstName, lastName, email string) *User {
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}
}
