package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// GetByAccountNumber retrieves an account by its account number.
	// Returns ErrAccountNotFound if no account exists for the number.
	GetByAccountNumber(ctx context.Context, number AccountNumber) (*Account, error)

	// Create persists a newly opened account
	Create(ctx context.Context, account *Account) error

	// Update persists changes to an existing account, typically the balance
	// after a deposit, withdrawal or transfer.
	Update(ctx context.Context, account *Account) error

	// FindAll retrieves every account
	FindAll(ctx context.Context) ([]*Account, error)

	// FindByUserIDs retrieves the accounts owned by the given users.
	// Used to resolve transfer targets.
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*Account, error)
}

// AccountHistoryRepository defines the interface for history persistence operations
type AccountHistoryRepository interface {
	// Create appends one immutable history record
	Create(ctx context.Context, history *AccountHistory) error

	// FindByAccountNumber retrieves every history record where the account is
	// either source or destination, ordered by creation time ascending.
	FindByAccountNumber(ctx context.Context, number AccountNumber) ([]*AccountHistory, error)
}

// TransactionManager defines the interface for running a function within one
// atomic persistence transaction. If the function returns an error the
// transaction is rolled back, otherwise it is committed.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
