package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/peerbank/banking-backend/domain"
)

// AccountRepository is a map-backed implementation of
// domain.AccountRepository. Reads return defensive copies so that lock-free
// balance reads are race-safe while a mutation is in flight.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[domain.AccountNumber]*domain.Account
}

// NewAccountRepository creates an empty in-memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[domain.AccountNumber]*domain.Account),
	}
}

// GetByAccountNumber retrieves an account by its account number
func (r *AccountRepository) GetByAccountNumber(ctx context.Context, number domain.AccountNumber) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return copyAccount(account), nil
}

// Create persists a newly opened account
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.AccountNumber] = copyAccount(account)
	return nil
}

// Update persists changes to an existing account
func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.AccountNumber]; !ok {
		return domain.ErrAccountNotFound
	}
	r.accounts[account.AccountNumber] = copyAccount(account)
	return nil
}

// FindAll retrieves every account
func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, copyAccount(account))
	}
	return accounts, nil
}

// FindByUserIDs retrieves the accounts owned by the given users
func (r *AccountRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[uuid.UUID]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}

	accounts := make([]*domain.Account, 0, len(userIDs))
	for _, account := range r.accounts {
		if wanted[account.UserID] {
			accounts = append(accounts, copyAccount(account))
		}
	}
	return accounts, nil
}

func copyAccount(account *domain.Account) *domain.Account {
	copied := *account
	return &copied
}
