package history

import (
	"context"
	"fmt"

	"github.com/peerbank/banking-backend/domain"
)

// Service is the append-only recorder for completed ledger operations and the
// read path for a given account's history. Each record method appends exactly
// one immutable row and is called only after the corresponding balance
// mutation has committed.
type Service struct {
	HistoryRepo domain.AccountHistoryRepository
}

// NewService creates a new history Service instance
func NewService(historyRepo domain.AccountHistoryRepository) *Service {
	return &Service{
		HistoryRepo: historyRepo,
	}
}

// RecordCompletionDepositMoney appends the history row for a completed deposit.
func (s *Service) RecordCompletionDepositMoney(ctx context.Context, to domain.AccountNumber, amount domain.Money) error {
	if err := s.HistoryRepo.Create(ctx, domain.NewDepositHistory(to, amount)); err != nil {
		return fmt.Errorf("failed to record deposit history: %w", err)
	}
	return nil
}

// RecordCompletionWithdrawMoney appends the history row for a completed withdrawal.
func (s *Service) RecordCompletionWithdrawMoney(ctx context.Context, from domain.AccountNumber, amount domain.Money) error {
	if err := s.HistoryRepo.Create(ctx, domain.NewWithdrawHistory(from, amount)); err != nil {
		return fmt.Errorf("failed to record withdraw history: %w", err)
	}
	return nil
}

// RecordCompletionTransferMoney appends the single combined history row for a
// completed transfer.
func (s *Service) RecordCompletionTransferMoney(ctx context.Context, from, to domain.AccountNumber, amount domain.Money) error {
	if err := s.HistoryRepo.Create(ctx, domain.NewTransferHistory(from, to, amount)); err != nil {
		return fmt.Errorf("failed to record transfer history: %w", err)
	}
	return nil
}

// FindByFromAccountNumber retrieves every history row where the account is
// either source or destination, ordered by creation time ascending so a
// caller can reconstruct the balance over time.
func (s *Service) FindByFromAccountNumber(ctx context.Context, number domain.AccountNumber) ([]*domain.AccountHistory, error) {
	return s.HistoryRepo.FindByAccountNumber(ctx, number)
}
