package usecase

import (
	"context"

	"github.com/google/uuid"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
)

// CreateAd stores a new ad under a generated id.
func (u *RewardUseCase) CreateAd(ctx context.Context, req port.CreateAdReq) (domain.Ad, error) {
	ad := domain.Ad{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Reward:      req.Reward,
		CreatedAt:   u.now().UTC(),
	}
	if err := ad.Validate(); err != nil {
		return domain.Ad{}, err
	}
	if err := u.ads.CreateAd(ctx, ad); err != nil {
		return domain.Ad{}, err
	}
	return ad, nil
}

// ListAds returns the ad catalog.
func (u *RewardUseCase) ListAds(ctx context.Context) ([]domain.Ad, error) {
	return u.ads.ListAds(ctx)
}
