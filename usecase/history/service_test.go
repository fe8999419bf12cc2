package history

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/peerbank/banking-backend/domain"
)

// MockAccountHistoryRepository is a mock implementation of AccountHistoryRepository for testing
type MockAccountHistoryRepository struct {
	mock.Mock
}

func (m *MockAccountHistoryRepository) Create(ctx context.Context, history *domain.AccountHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockAccountHistoryRepository) FindByAccountNumber(ctx context.Context, number domain.AccountNumber) ([]*domain.AccountHistory, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AccountHistory), args.Error(1)
}

func mustMoney(t *testing.T, value string) domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func mustAccountNumber(t *testing.T, value string) domain.AccountNumber {
	t.Helper()
	n, err := domain.NewAccountNumber(value)
	require.NoError(t, err)
	return n
}

func TestRecordCompletionDepositMoney(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountHistoryRepository)
	service := NewService(mockRepo)

	to := mustAccountNumber(t, "123-4567-8901")
	amount := mustMoney(t, "50")

	mockRepo.On("Create", ctx, mock.MatchedBy(func(h *domain.AccountHistory) bool {
		return h.Type == domain.HistoryTypeDeposit &&
			h.Amount.Equal(amount) &&
			h.FromAccountNumber == nil &&
			h.ToAccountNumber != nil && *h.ToAccountNumber == to
	})).Return(nil)

	err := service.RecordCompletionDepositMoney(ctx, to, amount)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecordCompletionWithdrawMoney(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountHistoryRepository)
	service := NewService(mockRepo)

	from := mustAccountNumber(t, "123-4567-8901")
	amount := mustMoney(t, "30")

	mockRepo.On("Create", ctx, mock.MatchedBy(func(h *domain.AccountHistory) bool {
		return h.Type == domain.HistoryTypeWithdraw &&
			h.Amount.Equal(amount) &&
			h.ToAccountNumber == nil &&
			h.FromAccountNumber != nil && *h.FromAccountNumber == from
	})).Return(nil)

	err := service.RecordCompletionWithdrawMoney(ctx, from, amount)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecordCompletionTransferMoney(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountHistoryRepository)
	service := NewService(mockRepo)

	from := mustAccountNumber(t, "111-1111-1111")
	to := mustAccountNumber(t, "222-2222-2222")
	amount := mustMoney(t, "20")

	// a transfer is one combined row referencing both accounts
	mockRepo.On("Create", ctx, mock.MatchedBy(func(h *domain.AccountHistory) bool {
		return h.Type == domain.HistoryTypeTransfer &&
			h.Amount.Equal(amount) &&
			h.FromAccountNumber != nil && *h.FromAccountNumber == from &&
			h.ToAccountNumber != nil && *h.ToAccountNumber == to
	})).Return(nil)

	err := service.RecordCompletionTransferMoney(ctx, from, to, amount)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestRecordCompletion_StorageFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountHistoryRepository)
	service := NewService(mockRepo)

	storageErr := errors.New("storage unavailable")
	mockRepo.On("Create", ctx, mock.Anything).Return(storageErr)

	err := service.RecordCompletionDepositMoney(ctx, mustAccountNumber(t, "123-4567-8901"), mustMoney(t, "50"))

	assert.ErrorIs(t, err, storageErr)
}

func TestFindByFromAccountNumber(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountHistoryRepository)
	service := NewService(mockRepo)

	number := mustAccountNumber(t, "123-4567-8901")
	want := []*domain.AccountHistory{
		domain.NewDepositHistory(number, mustMoney(t, "50")),
		domain.NewWithdrawHistory(number, mustMoney(t, "30")),
	}
	mockRepo.On("FindByAccountNumber", ctx, number).Return(want, nil)

	got, err := service.FindByFromAccountNumber(ctx, number)

	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
