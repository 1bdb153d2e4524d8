package usecase

import (
	"context"
	"errors"
	"fmt"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
	"ad-rewards/internal/metrics"
)

// applyReferral credits the referral bonus to referrerID and records the
// relationship in the same account update, so either both are stored or
// neither is. It is a no-op for an empty or unknown referrer.
func (u *RewardUseCase) applyReferral(ctx context.Context, newUserID, referrerID string) error {
	if referrerID == "" {
		return nil
	}
	err := u.ledger.Update(ctx, referrerID, func(tx port.AccountTx) error {
		if _, err := tx.Credit(domain.ReferralBonus, domain.TxnReferralBonus, u.now()); err != nil {
			return fmt.Errorf("credit referral bonus: %w", err)
		}
		if err := tx.AddReferral(newUserID); err != nil {
			return fmt.Errorf("record referral: %w", err)
		}
		return nil
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	metrics.PointsCredited.WithLabelValues(string(domain.TxnReferralBonus)).Add(float64(domain.ReferralBonus))
	return nil
}

// Referrals returns the ids of users referred by userID.
func (u *RewardUseCase) Referrals(ctx context.Context, userID string) ([]string, error) {
	return u.ledger.Referrals(ctx, userID)
}
