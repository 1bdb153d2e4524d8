package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsToCurrency(t *testing.T) {
	tests := []struct {
		points int64
		want   string
	}{
		{1000, "10000"},
		{2500, "25000"},
		{1001, "10010"},
		{1234, "12340"},
		{999, "9990"},
	}
	for _, tt := range tests {
		got := PointsToCurrency(tt.points)
		assert.Truef(t, got.Equal(decimal.RequireFromString(tt.want)),
			"PointsToCurrency(%d) = %s, want %s", tt.points, got, tt.want)
	}
}

func TestCheckWithdrawalOrder(t *testing.T) {
	u := User{ID: "u1", Balance: 500}

	// Balance is checked before the minimum.
	require.ErrorIs(t, CheckWithdrawal(u, 1000), ErrInsufficientBalance)
	require.ErrorIs(t, CheckWithdrawal(u, 100), ErrBelowMinimum)

	u.Balance = 5000
	require.ErrorIs(t, CheckWithdrawal(u, 1000), ErrPayoutHandleMissing)

	u.PayoutHandle = "081234567890"
	require.NoError(t, CheckWithdrawal(u, 1000))
	require.ErrorIs(t, CheckWithdrawal(u, -1), ErrBelowMinimum)
}

func TestUserCreditDebit(t *testing.T) {
	u := User{ID: "u1"}
	require.ErrorIs(t, u.Credit(0), ErrInvalidAmount)
	require.NoError(t, u.Credit(50))
	require.ErrorIs(t, u.Debit(51), ErrInsufficientBalance)
	assert.Equal(t, int64(50), u.Balance)
	require.ErrorIs(t, u.Debit(-3), ErrInvalidAmount)
	require.NoError(t, u.Debit(50))
	assert.Zero(t, u.Balance)
}
