package port

import (
	"context"

	"ad-rewards/internal/core/domain"

	"github.com/shopspring/decimal"
)

// RewardUseCase defines the business operations exposed by the reward
// engine. This interface represents the primary port into the application
// domain; the HTTP and bot adapters depend on it only.
type RewardUseCase interface {
	// Register creates a user with a zero balance and applies the referral
	// bonus when referredBy names an existing user.
	Register(ctx context.Context, req RegisterReq) error
	// SetPayoutHandle sets or replaces the payout handle of a user.
	SetPayoutHandle(ctx context.Context, userID, handle string) error

	// CreateAd stores a new ad and returns it with its generated id.
	CreateAd(ctx context.Context, req CreateAdReq) (domain.Ad, error)
	// ListAds returns the ad catalog.
	ListAds(ctx context.Context) ([]domain.Ad, error)

	// RecordView credits the reward of an ad to a user unless the same ad
	// was rewarded to the same user within the cooldown window. It returns
	// the new balance.
	RecordView(ctx context.Context, userID, adID string) (int64, error)
	// Withdraw converts points into a pending withdraw request.
	Withdraw(ctx context.Context, userID string, amount int64) (*WithdrawResp, error)

	// User returns the account of a user.
	User(ctx context.Context, userID string) (domain.User, error)
	// Balance returns the current point balance of a user.
	Balance(ctx context.Context, userID string) (int64, error)
	// Transactions returns the ledger history of a user in append order.
	Transactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	// Referrals returns the ids of users referred by userID.
	Referrals(ctx context.Context, userID string) ([]string, error)
	// PendingWithdrawal returns the latest withdraw request of a user.
	PendingWithdrawal(ctx context.Context, userID string) (*domain.WithdrawRequest, error)
}

// RegisterReq carries the registration input. ReferredBy is optional.
type RegisterReq struct {
	UserID     string
	Username   string
	ReferredBy string
}

// CreateAdReq carries the fields a creator may set on a new ad.
type CreateAdReq struct {
	Title       string
	Description string
	Reward      int64
}

// WithdrawResp describes a successful withdrawal. Message is a short
// summary; CurrencyAmount is the converted amount recorded in the request.
type WithdrawResp struct {
	Message          string
	RemainingBalance int64
	CurrencyAmount   decimal.Decimal
}
