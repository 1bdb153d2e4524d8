package domain

import "time"

// ReferralBonus is the number of points credited to a referrer when a new
// user registers with their id.
const ReferralBonus int64 = 10

// User is a participant of the reward program. Balance is denominated in
// points and is never negative. ReferredBy is empty when the user joined
// without a (valid) referrer and never changes after registration.
type User struct {
	ID           string
	Username     string
	Balance      int64
	ReferredBy   string
	PayoutHandle string
	CreatedAt    time.Time
}

// HasPayoutHandle reports whether a payout handle has been registered.
func (u User) HasPayoutHandle() bool {
	return u.PayoutHandle != ""
}

// Credit increases the balance by amount.
func (u *User) Credit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	u.Balance += amount
	return nil
}

// Debit decreases the balance by amount. The balance is left untouched
// when it does not cover amount.
func (u *User) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if u.Balance < amount {
		return ErrInsufficientBalance
	}
	u.Balance -= amount
	return nil
}
