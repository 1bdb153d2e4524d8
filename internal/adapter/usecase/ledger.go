package usecase

import (
	"context"

	"ad-rewards/internal/core/domain"
)

// User returns the account of a user.
func (u *RewardUseCase) User(ctx context.Context, userID string) (domain.User, error) {
	return u.ledger.GetUser(ctx, userID)
}

// Balance returns the current point balance of a user.
func (u *RewardUseCase) Balance(ctx context.Context, userID string) (int64, error) {
	return u.ledger.Balance(ctx, userID)
}

// Transactions drains the ledger history of a user. Unknown users have an
// empty history.
func (u *RewardUseCase) Transactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0)
	for txn, err := range u.ledger.History(ctx, userID) {
		if err != nil {
			return nil, err
		}
		out = append(out, txn)
	}
	return out, nil
}
