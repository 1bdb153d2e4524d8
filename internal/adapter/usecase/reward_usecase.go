package usecase

import (
	"log/slog"
	"time"

	"ad-rewards/internal/core/port"
)

// RewardUseCase provides business logic for registrations, ad views,
// referrals and withdrawals. It orchestrates the domain rules and the
// repositories to implement port.RewardUseCase. It holds no state of its
// own; every mutation goes through the ledger.
type RewardUseCase struct {
	ledger port.LedgerRepository
	ads    port.AdRepository
	logger *slog.Logger

	// now is the clock used for cooldown checks and transaction
	// timestamps.
	now func() time.Time
}

var _ port.RewardUseCase = (*RewardUseCase)(nil)

// Option customises a RewardUseCase.
type Option func(*RewardUseCase)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(u *RewardUseCase) {
		u.now = now
	}
}

// NewRewardUseCase creates a new usecase over the provided repositories.
// A nil logger discards log output.
func NewRewardUseCase(ledger port.LedgerRepository, ads port.AdRepository, logger *slog.Logger, opts ...Option) *RewardUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	u := &RewardUseCase{
		ledger: ledger,
		ads:    ads,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}
