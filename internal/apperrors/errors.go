package apperrors

import "errors"

// ErrNotFound indicates that a user, account or card could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates a payment or transfer exceeding the balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrCardFrozen indicates a payment attempt with a frozen card.
var ErrCardFrozen = errors.New("card is frozen")

// ErrNotSavingsAccount indicates an interest operation on a classic account.
var ErrNotSavingsAccount = errors.New("not a savings account")

// ErrOutstandingBalance indicates a deletion attempt on a funded account.
var ErrOutstandingBalance = errors.New("account has outstanding balance")
