package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
	"ad-rewards/internal/metrics"
)

// Withdraw debits amount points from userID and replaces the pending
// withdraw request with the converted currency amount. Eligibility is
// checked under the account lock; nothing is written unless every check
// passes.
func (u *RewardUseCase) Withdraw(ctx context.Context, userID string, amount int64) (*port.WithdrawResp, error) {
	var resp *port.WithdrawResp
	err := u.ledger.Update(ctx, userID, func(tx port.AccountTx) error {
		user := tx.User()
		if err := domain.CheckWithdrawal(user, amount); err != nil {
			return err
		}
		currency := domain.PointsToCurrency(amount)
		at := u.now().UTC()

		remaining, err := tx.Debit(amount, domain.TxnWithdraw, at)
		if err != nil {
			return err
		}
		err = tx.SetWithdrawRequest(domain.WithdrawRequest{
			UserID:       user.ID,
			Points:       amount,
			Amount:       currency,
			PayoutHandle: user.PayoutHandle,
			CreatedAt:    at,
		})
		if err != nil {
			return err
		}
		resp = &port.WithdrawResp{
			Message:          fmt.Sprintf("withdrawal request submitted to %s for %s", user.PayoutHandle, currency.StringFixed(2)),
			RemainingBalance: remaining,
			CurrencyAmount:   currency,
		}
		return nil
	})
	if err != nil {
		metrics.WithdrawalsTotal.WithLabelValues(domain.KindOf(err).String()).Inc()
		return nil, err
	}

	metrics.WithdrawalsTotal.WithLabelValues("accepted").Inc()
	metrics.PointsDebited.WithLabelValues(string(domain.TxnWithdraw)).Add(float64(amount))
	u.logger.Info("withdrawal requested",
		slog.String("user_id", userID),
		slog.Int64("points", amount),
		slog.String("currency_amount", resp.CurrencyAmount.String()),
	)
	return resp, nil
}

// PendingWithdrawal returns the latest withdraw request of a user.
func (u *RewardUseCase) PendingWithdrawal(ctx context.Context, userID string) (*domain.WithdrawRequest, error) {
	return u.ledger.PendingWithdrawal(ctx, userID)
}
