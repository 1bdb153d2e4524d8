package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinWithdrawAmount is the smallest number of points that can be withdrawn.
const MinWithdrawAmount int64 = 1000

// Exchange rate: pointsPerUnitBlock points convert to currencyPerUnitBlock
// currency units.
var (
	pointsPerUnitBlock   = decimal.NewFromInt(1000)
	currencyPerUnitBlock = decimal.NewFromInt(10000)
)

// WithdrawRequest is the pending payout intent of a user. A newer request
// replaces the previous one.
type WithdrawRequest struct {
	UserID       string
	Points       int64
	Amount       decimal.Decimal // currency units
	PayoutHandle string
	CreatedAt    time.Time
}

// PointsToCurrency converts points into currency units. The division by
// the points block happens before the multiplication so that amounts that
// are not multiples of the block keep their fractional part.
func PointsToCurrency(points int64) decimal.Decimal {
	return decimal.NewFromInt(points).Div(pointsPerUnitBlock).Mul(currencyPerUnitBlock)
}

// CheckWithdrawal validates a withdrawal of amount points by u. Checks run
// in a fixed order: balance, minimum, payout handle.
func CheckWithdrawal(u User, amount int64) error {
	if amount > u.Balance {
		return ErrInsufficientBalance
	}
	if amount < MinWithdrawAmount {
		return ErrBelowMinimum
	}
	if !u.HasPayoutHandle() {
		return ErrPayoutHandleMissing
	}
	return nil
}
