package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{
			name:   "Positive amount is accepted",
			amount: decimal.NewFromInt(100),
		},
		{
			name:   "Zero amount is accepted",
			amount: decimal.Zero,
		},
		{
			name:    "Negative amount is rejected",
			amount:  decimal.NewFromInt(-1),
			wantErr: ErrNegativeMoney,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, m.Amount().Equal(tt.amount))
		})
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("250.75")
	require.NoError(t, err)
	assert.Equal(t, "250.75", m.String())

	_, err = NewMoneyFromString("-3")
	assert.ErrorIs(t, err, ErrNegativeMoney)

	_, err = NewMoneyFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoney_Add(t *testing.T) {
	a, _ := NewMoneyFromString("100.25")
	b, _ := NewMoneyFromString("49.75")

	sum := a.Add(b)

	assert.Equal(t, "150", sum.String())
	// operands are unchanged
	assert.Equal(t, "100.25", a.String())
	assert.Equal(t, "49.75", b.String())
}

func TestMoney_Subtract(t *testing.T) {
	a, _ := NewMoneyFromString("100")
	b, _ := NewMoneyFromString("30")

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "70", diff.String())

	// subtracting below zero fails and produces no negative Money
	_, err = b.Subtract(a)
	assert.ErrorIs(t, err, ErrNegativeMoney)

	// subtracting to exactly zero is fine
	zero, err := a.Subtract(a)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())
}

func TestMoney_Comparisons(t *testing.T) {
	small, _ := NewMoneyFromString("10")
	big, _ := NewMoneyFromString("20")

	assert.True(t, big.GreaterThan(small))
	assert.False(t, small.GreaterThan(big))
	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 0, small.Cmp(small))
	assert.True(t, small.IsPositive())
	assert.False(t, ZeroMoney().IsPositive())
	assert.True(t, ZeroMoney().IsZero())
	assert.True(t, small.Equal(small))
	assert.False(t, small.Equal(big))
}
