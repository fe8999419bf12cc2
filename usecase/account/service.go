package account

import (
	"context"
	"fmt"

	"github.com/peerbank/banking-backend/domain"
)

// Service orchestrates balance lookups and mutations against persisted
// account state. It is the unit of consistency for a single-account
// operation; callers of the mutating methods must hold the account's ledger
// lock, which the Service itself does not acquire.
type Service struct {
	AccountRepo domain.AccountRepository
	TxManager   domain.TransactionManager
}

// NewService creates a new account Service instance
func NewService(accountRepo domain.AccountRepository, txManager domain.TransactionManager) *Service {
	return &Service{
		AccountRepo: accountRepo,
		TxManager:   txManager,
	}
}

// GetAccountByAccountNumber retrieves the account for the given number.
// Returns domain.ErrAccountNotFound if it does not exist.
func (s *Service) GetAccountByAccountNumber(ctx context.Context, number domain.AccountNumber) (*domain.Account, error) {
	account, err := s.AccountRepo.GetByAccountNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// DepositMoney applies a deposit to the account and persists the new balance.
// Must be called while holding the account's lock.
func (s *Service) DepositMoney(ctx context.Context, number domain.AccountNumber, amount domain.Money) (*domain.Account, error) {
	account, err := s.AccountRepo.GetByAccountNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := account.Deposit(amount); err != nil {
		return nil, err
	}

	if err := s.AccountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to persist deposit: %w", err)
	}

	return account, nil
}

// WithdrawMoney applies a withdrawal to the account and persists the new
// balance. Must be called while holding the account's lock.
func (s *Service) WithdrawMoney(ctx context.Context, number domain.AccountNumber, amount domain.Money) (*domain.Account, error) {
	account, err := s.AccountRepo.GetByAccountNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if err := account.Withdraw(amount); err != nil {
		return nil, err
	}

	if err := s.AccountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to persist withdrawal: %w", err)
	}

	return account, nil
}

// TransferMoney debits from and credits to as one atomic persisted unit.
// Both balance updates happen inside a single storage transaction, so a
// failure at any step leaves neither account changed. Must be called while
// holding both accounts' locks.
func (s *Service) TransferMoney(ctx context.Context, from, to domain.AccountNumber, amount domain.Money) error {
	if from == to {
		return domain.ErrSameAccount
	}

	return s.TxManager.WithTransaction(ctx, func(txCtx context.Context) error {
		fromAccount, err := s.AccountRepo.GetByAccountNumber(txCtx, from)
		if err != nil {
			return err
		}
		toAccount, err := s.AccountRepo.GetByAccountNumber(txCtx, to)
		if err != nil {
			return err
		}

		if err := fromAccount.Withdraw(amount); err != nil {
			return err
		}
		if err := toAccount.Deposit(amount); err != nil {
			return err
		}

		if err := s.AccountRepo.Update(txCtx, fromAccount); err != nil {
			return fmt.Errorf("failed to persist transfer debit: %w", err)
		}
		if err := s.AccountRepo.Update(txCtx, toAccount); err != nil {
			return fmt.Errorf("failed to persist transfer credit: %w", err)
		}

		return nil
	})
}

// FindAll retrieves every account. Lock-free; reflects last-committed state.
func (s *Service) FindAll(ctx context.Context) ([]*domain.Account, error) {
	return s.AccountRepo.FindAll(ctx)
}
