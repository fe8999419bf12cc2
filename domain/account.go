package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is the mutable aggregate holding one user's balance.
// Its invariant is that the balance is never negative: any withdrawal that
// would drive it below zero is rejected before mutation. Mutations must only
// happen through the ledger facade's serialized path.
type Account struct {
	AccountNumber AccountNumber
	UserID        uuid.UUID
	Balance       Money
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount creates an Account with the given number, owner and opening balance.
func NewAccount(number AccountNumber, userID uuid.UUID, balance Money) *Account {
	now := time.Now()
	return &Account{
		AccountNumber: number,
		UserID:        userID,
		Balance:       balance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Deposit adds amount to the balance.
// Returns ErrInvalidAmount if amount is not positive.
func (a *Account) Deposit(amount Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = time.Now()
	return nil
}

// Withdraw subtracts amount from the balance.
// Returns ErrInvalidAmount if amount is not positive and ErrInsufficientFunds
// if amount exceeds the current balance. The balance is unchanged on error.
func (a *Account) Withdraw(amount Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}

	newBalance, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}

	a.Balance = newBalance
	a.UpdatedAt = time.Now()
	return nil
}
