package port

import (
	"context"
	"iter"
	"time"

	"ad-rewards/internal/core/domain"
)

// LedgerRepository is the single source of truth for balances and
// transaction history. It is an outbound port in hexagonal architecture.
//
// Implementations must treat every user account as an exclusively lockable
// resource: all mutations of one account are serialized, while different
// accounts may be mutated in parallel. Each balance change is stored
// together with exactly one transaction of the same signed amount.
type LedgerRepository interface {
	// CreateUser stores a new user. It fails with domain.ErrAlreadyExists
	// when the id is taken.
	CreateUser(ctx context.Context, user domain.User) error
	// GetUser returns a copy of the user or domain.ErrUserNotFound.
	GetUser(ctx context.Context, id string) (domain.User, error)
	// SetPayoutHandle replaces the payout handle of a user.
	SetPayoutHandle(ctx context.Context, id, handle string) error

	// Credit adds amount points to the user and appends a positive
	// transaction. It returns the new balance.
	Credit(ctx context.Context, userID string, amount int64, typ domain.TxnType, at time.Time) (int64, error)
	// Debit removes amount points from the user and appends a negative
	// transaction. It fails with domain.ErrInsufficientBalance when the
	// balance does not cover amount.
	Debit(ctx context.Context, userID string, amount int64, typ domain.TxnType, at time.Time) (int64, error)
	// Balance returns the current balance of a user.
	Balance(ctx context.Context, userID string) (int64, error)
	// History yields the transactions of a user in append order. Unknown
	// users and users without transactions yield nothing.
	History(ctx context.Context, userID string) iter.Seq2[domain.Transaction, error]

	// Update runs fn while holding the exclusive lock of the user's account.
	// Mutations made through tx are applied only when fn returns nil. It
	// fails with domain.ErrUserNotFound before calling fn if the user does
	// not exist.
	Update(ctx context.Context, userID string, fn func(tx AccountTx) error) error

	// Referrals returns the users referred by referrerID in registration
	// order.
	Referrals(ctx context.Context, referrerID string) ([]string, error)
	// PendingWithdrawal returns the latest withdraw request of a user, or
	// nil when there is none.
	PendingWithdrawal(ctx context.Context, userID string) (*domain.WithdrawRequest, error)
}

// AccountTx is the view of a single locked account handed to
// LedgerRepository.Update.
type AccountTx interface {
	// User returns the account state as seen inside the transaction.
	User() domain.User
	// LastView returns the time of the last rewarded view of adID.
	LastView(adID string) (time.Time, bool, error)
	// SetLastView records a rewarded view of adID.
	SetLastView(adID string, at time.Time) error
	Credit(amount int64, typ domain.TxnType, at time.Time) (int64, error)
	Debit(amount int64, typ domain.TxnType, at time.Time) (int64, error)
	// SetWithdrawRequest replaces the pending withdraw request.
	SetWithdrawRequest(req domain.WithdrawRequest) error
	// AddReferral appends referredID to the referral list of the locked
	// account.
	AddReferral(referredID string) error
}
