package memory

import "context"

// TransactionManager is the in-memory implementation of
// domain.TransactionManager. The map stores cannot fail partway through a
// write and per-account mutual exclusion is already provided by the ledger
// facade, so the function simply runs in place.
type TransactionManager struct{}

// NewTransactionManager creates an in-memory transaction manager
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// WithTransaction executes fn directly
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
