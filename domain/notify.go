package domain

import (
	"context"

	"github.com/google/uuid"
)

// TaskStatus is the outcome tag of a completed operation
type TaskStatus string

const (
	TaskStatusSuccess TaskStatus = "SUCCESS"
)

// TaskType is the operation tag of a completed operation
type TaskType string

const (
	TaskTypeDeposit  TaskType = "DEPOSIT"
	TaskTypeWithdraw TaskType = "WITHDRAW"
	TaskTypeTransfer TaskType = "TRANSFER"
)

// AlarmMessage is the payload sent to the account owner after an operation completes
type AlarmMessage struct {
	Status TaskStatus
	Type   TaskType
}

// Notifier is the fire-and-forget notification side-channel keyed by the
// account owner's user id. It is not part of ledger atomicity: a failed
// notification must never roll back or fail the ledger mutation.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message AlarmMessage) error
}
