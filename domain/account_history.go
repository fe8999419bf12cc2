package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryType represents the kind of completed ledger event
type HistoryType string

const (
	HistoryTypeDeposit  HistoryType = "DEPOSIT"
	HistoryTypeWithdraw HistoryType = "WITHDRAW"
	HistoryTypeTransfer HistoryType = "TRANSFER"
)

// AccountHistory is an immutable record of one completed ledger event.
// A transfer is recorded as a single row referencing both accounts so its
// atomicity is visible as one auditable fact. FromAccountNumber is nil for
// pure deposits; ToAccountNumber is nil for pure withdrawals.
type AccountHistory struct {
	ID                uuid.UUID
	Type              HistoryType
	Amount            Money
	FromAccountNumber *AccountNumber
	ToAccountNumber   *AccountNumber
	CreatedAt         time.Time
}

// NewDepositHistory creates the history record for a completed deposit into to.
func NewDepositHistory(to AccountNumber, amount Money) *AccountHistory {
	return &AccountHistory{
		ID:              uuid.New(),
		Type:            HistoryTypeDeposit,
		Amount:          amount,
		ToAccountNumber: &to,
		CreatedAt:       time.Now(),
	}
}

// NewWithdrawHistory creates the history record for a completed withdrawal from from.
func NewWithdrawHistory(from AccountNumber, amount Money) *AccountHistory {
	return &AccountHistory{
		ID:                uuid.New(),
		Type:              HistoryTypeWithdraw,
		Amount:            amount,
		FromAccountNumber: &from,
		CreatedAt:         time.Now(),
	}
}

// NewTransferHistory creates the single combined history record for a
// completed transfer from from to to.
func NewTransferHistory(from, to AccountNumber, amount Money) *AccountHistory {
	return &AccountHistory{
		ID:                uuid.New(),
		Type:              HistoryTypeTransfer,
		Amount:            amount,
		FromAccountNumber: &from,
		ToAccountNumber:   &to,
		CreatedAt:         time.Now(),
	}
}

// Involves reports whether number appears as source or destination of the event.
func (h *AccountHistory) Involves(number AccountNumber) bool {
	if h.FromAccountNumber != nil && *h.FromAccountNumber == number {
		return true
	}
	if h.ToAccountNumber != nil && *h.ToAccountNumber == number {
		return true
	}
	return false
}
