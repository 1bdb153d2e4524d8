package usecase

import (
	"context"
	"log/slog"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
	"ad-rewards/internal/metrics"
)

// RecordView credits the reward of adID to userID. The user and the ad are
// looked up before the account is locked; only the cooldown check, the
// write of the new view time and the credit run under the lock, so two
// concurrent views of the same pair cannot both be rewarded. A rejected
// view leaves the previous view time in place.
func (u *RewardUseCase) RecordView(ctx context.Context, userID, adID string) (int64, error) {
	ad, err := u.lookupView(ctx, userID, adID)
	if err != nil {
		metrics.ViewsTotal.WithLabelValues(domain.KindOf(err).String()).Inc()
		return 0, err
	}

	var balance int64
	reward := ad.Reward
	err = u.ledger.Update(ctx, userID, func(tx port.AccountTx) error {
		at := u.now()
		last, seen, err := tx.LastView(adID)
		if err != nil {
			return err
		}
		if !domain.ViewAllowed(last, seen, at) {
			return domain.ErrViewTooSoon
		}
		if err = tx.SetLastView(adID, at); err != nil {
			return err
		}
		balance, err = tx.Credit(reward, domain.TxnViewAd, at)
		return err
	})
	if err != nil {
		metrics.ViewsTotal.WithLabelValues(domain.KindOf(err).String()).Inc()
		return 0, err
	}

	metrics.ViewsTotal.WithLabelValues("credited").Inc()
	metrics.PointsCredited.WithLabelValues(string(domain.TxnViewAd)).Add(float64(reward))
	u.logger.Debug("view credited",
		slog.String("user_id", userID),
		slog.String("ad_id", adID),
		slog.Int64("reward", reward),
		slog.Int64("balance", balance),
	)
	return balance, nil
}

// lookupView resolves the user and then the ad, in that order.
func (u *RewardUseCase) lookupView(ctx context.Context, userID, adID string) (domain.Ad, error) {
	if _, err := u.ledger.GetUser(ctx, userID); err != nil {
		return domain.Ad{}, err
	}
	return u.ads.GetAd(ctx, adID)
}
