package banking

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/peerbank/banking-backend/domain"
	"github.com/peerbank/banking-backend/usecase/account"
	"github.com/peerbank/banking-backend/usecase/history"
	"github.com/peerbank/banking-backend/usecase/ledger"
)

// FriendFinder resolves the social graph for transfer targeting. The friend
// workflow itself is owned by an external collaborator; the ledger only
// consumes the resulting user ids.
type FriendFinder interface {
	FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// HistorySummary is the read model for an account's history: the current
// balance plus the chronological list of completed operations.
type HistorySummary struct {
	Balance domain.Money
	Entries []*domain.AccountHistory
}

// TransferTarget is one counterparty account a user may transfer to.
type TransferTarget struct {
	UserID        uuid.UUID
	AccountNumber domain.AccountNumber
}

// Service is the application-layer orchestrator. It routes mutations through
// the ledger facade, fans out fire-and-forget notifications, and serves the
// read models (history plus balance, transfer targets).
type Service struct {
	AccountService *account.Service
	HistoryService *history.Service
	LedgerFacade   *ledger.Facade
	Notifier       domain.Notifier
	FriendFinder   FriendFinder
}

// NewService creates a new banking Service instance.
// Pass nil for notifier if no notifications should be sent.
func NewService(
	accountService *account.Service,
	historyService *history.Service,
	ledgerFacade *ledger.Facade,
	notifier domain.Notifier,
	friendFinder FriendFinder,
) *Service {
	return &Service{
		AccountService: accountService,
		HistoryService: historyService,
		LedgerFacade:   ledgerFacade,
		Notifier:       notifier,
		FriendFinder:   friendFinder,
	}
}

// GetHistory returns the account's current balance and its completed
// operations in chronological order. Lock-free; reflects last-committed state.
func (s *Service) GetHistory(ctx context.Context, number domain.AccountNumber) (*HistorySummary, error) {
	acc, err := s.AccountService.GetAccountByAccountNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	entries, err := s.HistoryService.FindByFromAccountNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	return &HistorySummary{
		Balance: acc.Balance,
		Entries: entries,
	}, nil
}

// Deposit deposits amount into the account and notifies its owner.
func (s *Service) Deposit(ctx context.Context, number domain.AccountNumber, amount domain.Money) error {
	acc, err := s.AccountService.GetAccountByAccountNumber(ctx, number)
	if err != nil {
		return err
	}

	if err := s.LedgerFacade.DepositWithLock(ctx, number, amount); err != nil {
		return err
	}

	s.notify(ctx, acc.UserID, domain.AlarmMessage{Status: domain.TaskStatusSuccess, Type: domain.TaskTypeDeposit})
	return nil
}

// Withdraw withdraws amount from the account and notifies its owner.
func (s *Service) Withdraw(ctx context.Context, number domain.AccountNumber, amount domain.Money) error {
	acc, err := s.AccountService.GetAccountByAccountNumber(ctx, number)
	if err != nil {
		return err
	}

	if err := s.LedgerFacade.WithdrawWithLock(ctx, number, amount); err != nil {
		return err
	}

	s.notify(ctx, acc.UserID, domain.AlarmMessage{Status: domain.TaskStatusSuccess, Type: domain.TaskTypeWithdraw})
	return nil
}

// Transfer moves amount between the two accounts and notifies both owners:
// the sender about the transfer, the recipient about the incoming deposit.
func (s *Service) Transfer(ctx context.Context, from, to domain.AccountNumber, amount domain.Money) error {
	fromAccount, err := s.AccountService.GetAccountByAccountNumber(ctx, from)
	if err != nil {
		return err
	}
	toAccount, err := s.AccountService.GetAccountByAccountNumber(ctx, to)
	if err != nil {
		return err
	}

	if err := s.LedgerFacade.TransferWithLock(ctx, from, to, amount); err != nil {
		return err
	}

	s.notify(ctx, fromAccount.UserID, domain.AlarmMessage{Status: domain.TaskStatusSuccess, Type: domain.TaskTypeTransfer})
	s.notify(ctx, toAccount.UserID, domain.AlarmMessage{Status: domain.TaskStatusSuccess, Type: domain.TaskTypeDeposit})
	return nil
}

// GetTransferTargets lists the counterparty accounts the owner of number may
// transfer to: the accounts of the owner's friends.
func (s *Service) GetTransferTargets(ctx context.Context, number domain.AccountNumber) ([]TransferTarget, error) {
	acc, err := s.AccountService.GetAccountByAccountNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	friendIDs, err := s.FriendFinder.FindFriendIDs(ctx, acc.UserID)
	if err != nil {
		return nil, err
	}
	if len(friendIDs) == 0 {
		return []TransferTarget{}, nil
	}

	friendAccounts, err := s.AccountService.AccountRepo.FindByUserIDs(ctx, friendIDs)
	if err != nil {
		return nil, err
	}

	targets := make([]TransferTarget, 0, len(friendAccounts))
	for _, friendAccount := range friendAccounts {
		targets = append(targets, TransferTarget{
			UserID:        friendAccount.UserID,
			AccountNumber: friendAccount.AccountNumber,
		})
	}
	return targets, nil
}

// notify sends the alarm for a completed operation. The side-channel is
// fire-and-forget: a failure is logged and never turns into a ledger error.
func (s *Service) notify(ctx context.Context, userID uuid.UUID, message domain.AlarmMessage) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, userID, message); err != nil {
		log.Printf("banking: failed to notify user %s about %s/%s: %v",
			userID, message.Status, message.Type, err)
	}
}
