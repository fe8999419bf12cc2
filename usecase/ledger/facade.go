package ledger

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/peerbank/banking-backend/domain"
	"github.com/peerbank/banking-backend/usecase/account"
	"github.com/peerbank/banking-backend/usecase/history"
)

// DefaultLockTimeout bounds how long a caller waits for an account lock
// before giving up with domain.ErrLockTimeout.
const DefaultLockTimeout = 3 * time.Second

// Facade is the serialization point of the ledger. It guarantees at most one
// in-flight mutating operation per account and a canonical lock order for
// two-account operations, so a transfer is atomic with respect to every
// other deposit, withdrawal or transfer touching either endpoint.
//
// Locks are process-wide, created lazily on first use and never removed:
// accounts are long-lived, so the map grows to one entry per distinct
// account ever touched.
type Facade struct {
	AccountService *account.Service
	HistoryService *history.Service

	lockTimeout time.Duration
	locks       sync.Map // domain.AccountNumber -> *semaphore.Weighted
}

// NewFacade creates a ledger Facade with the default lock timeout.
func NewFacade(accountService *account.Service, historyService *history.Service) *Facade {
	return NewFacadeWithTimeout(accountService, historyService, DefaultLockTimeout)
}

// NewFacadeWithTimeout creates a ledger Facade with a custom lock timeout.
func NewFacadeWithTimeout(accountService *account.Service, historyService *history.Service, lockTimeout time.Duration) *Facade {
	return &Facade{
		AccountService: accountService,
		HistoryService: historyService,
		lockTimeout:    lockTimeout,
	}
}

// DepositWithLock deposits amount into the account identified by number,
// serialized against every other mutation of that account, and records the
// completed operation.
func (f *Facade) DepositWithLock(ctx context.Context, number domain.AccountNumber, amount domain.Money) error {
	release, err := f.acquire(ctx, number)
	if err != nil {
		return err
	}
	defer release()

	if _, err := f.AccountService.DepositMoney(ctx, number, amount); err != nil {
		return err
	}

	if err := f.HistoryService.RecordCompletionDepositMoney(ctx, number, amount); err != nil {
		return f.escalateHistoryFailure("deposit", number, err)
	}
	return nil
}

// WithdrawWithLock withdraws amount from the account identified by number,
// serialized against every other mutation of that account, and records the
// completed operation.
func (f *Facade) WithdrawWithLock(ctx context.Context, number domain.AccountNumber, amount domain.Money) error {
	release, err := f.acquire(ctx, number)
	if err != nil {
		return err
	}
	defer release()

	if _, err := f.AccountService.WithdrawMoney(ctx, number, amount); err != nil {
		return err
	}

	if err := f.HistoryService.RecordCompletionWithdrawMoney(ctx, number, amount); err != nil {
		return f.escalateHistoryFailure("withdraw", number, err)
	}
	return nil
}

// TransferWithLock moves amount from from to to, holding both accounts'
// locks for the duration. The locks are always acquired in canonical
// (lexicographic) account number order and released in reverse, which breaks
// the circular wait between concurrent opposing transfers.
func (f *Facade) TransferWithLock(ctx context.Context, from, to domain.AccountNumber, amount domain.Money) error {
	if from == to {
		return domain.ErrSameAccount
	}

	first, second := from, to
	if second.Less(first) {
		first, second = second, first
	}

	releaseFirst, err := f.acquire(ctx, first)
	if err != nil {
		return err
	}
	defer releaseFirst()

	releaseSecond, err := f.acquire(ctx, second)
	if err != nil {
		return err
	}
	defer releaseSecond()

	if err := f.AccountService.TransferMoney(ctx, from, to, amount); err != nil {
		return err
	}

	if err := f.HistoryService.RecordCompletionTransferMoney(ctx, from, to, amount); err != nil {
		return f.escalateHistoryFailure("transfer", from, err)
	}
	return nil
}

// lockFor returns the per-account lock for number, creating it on first use.
// LoadOrStore makes concurrent first-use creation race-free.
func (f *Facade) lockFor(number domain.AccountNumber) *semaphore.Weighted {
	if sem, ok := f.locks.Load(number); ok {
		return sem.(*semaphore.Weighted)
	}
	sem, _ := f.locks.LoadOrStore(number, semaphore.NewWeighted(1))
	return sem.(*semaphore.Weighted)
}

// acquire blocks until number's lock is free, the configured timeout
// expires, or ctx is cancelled. On success the returned release function
// must be called exactly once.
func (f *Facade) acquire(ctx context.Context, number domain.AccountNumber) (func(), error) {
	sem := f.lockFor(number)

	lockCtx, cancel := context.WithTimeout(ctx, f.lockTimeout)
	defer cancel()

	if err := sem.Acquire(lockCtx, 1); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.ErrLockTimeout
	}
	return func() { sem.Release(1) }, nil
}

// escalateHistoryFailure handles the case where the balance mutation has
// committed but the history write failed. The mutation cannot be undone here
// without re-acquiring locks already held, so the inconsistency is logged
// for manual or compensating reconciliation and surfaced to the caller.
func (f *Facade) escalateHistoryFailure(operation string, number domain.AccountNumber, err error) error {
	log.Printf("ledger: %s on account %s committed but history write failed, reconciliation required: %v",
		operation, number, err)
	return fmt.Errorf("%w: %v", domain.ErrHistoryPersist, err)
}
