package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/peerbank/banking-backend/domain"
)

// AccountHistoryRepository is an append-only, slice-backed implementation of
// domain.AccountHistoryRepository.
type AccountHistoryRepository struct {
	mu      sync.RWMutex
	entries []*domain.AccountHistory
}

// NewAccountHistoryRepository creates an empty in-memory history repository
func NewAccountHistoryRepository() *AccountHistoryRepository {
	return &AccountHistoryRepository{}
}

// Create appends one immutable history record
func (r *AccountHistoryRepository) Create(ctx context.Context, history *domain.AccountHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, copyHistory(history))
	return nil
}

// FindByAccountNumber retrieves every record involving the account, ordered
// by creation time ascending.
func (r *AccountHistoryRepository) FindByAccountNumber(ctx context.Context, number domain.AccountNumber) ([]*domain.AccountHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domain.AccountHistory, 0)
	for _, entry := range r.entries {
		if entry.Involves(number) {
			matches = append(matches, copyHistory(entry))
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches, nil
}

func copyHistory(history *domain.AccountHistory) *domain.AccountHistory {
	copied := *history
	if history.FromAccountNumber != nil {
		from := *history.FromAccountNumber
		copied.FromAccountNumber = &from
	}
	if history.ToAccountNumber != nil {
		to := *history.ToAccountNumber
		copied.ToAccountNumber = &to
	}
	return &copied
}
