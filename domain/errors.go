package domain

import "errors"

var (
	// ErrAccountNotFound is returned when the referenced account number has no account
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountNumber is returned when an account number is blank or malformed
	ErrInvalidAccountNumber = errors.New("invalid account number")

	// ErrNegativeMoney is returned when an operation would produce a negative Money
	ErrNegativeMoney = errors.New("money amount cannot be negative")

	// ErrInvalidAmount is returned when a deposit, withdrawal or transfer amount is not positive
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal or transfer debit exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount is returned when a transfer's source and destination are identical
	ErrSameAccount = errors.New("source and destination must be different accounts")

	// ErrLockTimeout is returned when an account lock cannot be acquired within the bound.
	// The caller has not acquired the lock and no state has changed; safe to retry.
	ErrLockTimeout = errors.New("timed out waiting for account lock")

	// ErrHistoryPersist is returned when the balance mutation committed but the history
	// write failed. This is a fatal inconsistency that requires reconciliation.
	ErrHistoryPersist = errors.New("history write failed after committed balance mutation")
)
