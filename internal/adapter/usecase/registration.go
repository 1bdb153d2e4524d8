package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
)

// Register creates a user with a zero balance. A referrer that does not
// exist at registration time is dropped silently and the registration
// still succeeds.
func (u *RewardUseCase) Register(ctx context.Context, req port.RegisterReq) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("empty user id: %w", domain.ErrInvalidArgument)
	}
	referrer, err := u.resolveReferrer(ctx, req.UserID, req.ReferredBy)
	if err != nil {
		return err
	}

	user := domain.User{
		ID:         req.UserID,
		Username:   req.Username,
		ReferredBy: referrer,
		CreatedAt:  u.now().UTC(),
	}
	if err = u.ledger.CreateUser(ctx, user); err != nil {
		return err
	}
	u.logger.Info("user registered", slog.String("user_id", user.ID), slog.String("referred_by", referrer))

	if err = u.applyReferral(ctx, user.ID, referrer); err != nil {
		// The user is stored already; registration succeeds regardless.
		u.logger.Error("apply referral", slog.String("user_id", user.ID), slog.Any("error", err))
	}
	return nil
}

// resolveReferrer returns referredBy if it names an existing user other
// than userID, and an empty string otherwise.
func (u *RewardUseCase) resolveReferrer(ctx context.Context, userID, referredBy string) (string, error) {
	if referredBy == "" || referredBy == userID {
		return "", nil
	}
	_, err := u.ledger.GetUser(ctx, referredBy)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return referredBy, nil
}

// SetPayoutHandle sets or replaces the payout handle of a user.
func (u *RewardUseCase) SetPayoutHandle(ctx context.Context, userID, handle string) error {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return fmt.Errorf("empty payout handle: %w", domain.ErrInvalidArgument)
	}
	return u.ledger.SetPayoutHandle(ctx, userID, handle)
}
