package port

import (
	"context"

	"ad-rewards/internal/core/domain"
)

// AdRepository stores the ad catalog. Ads are immutable once created.
type AdRepository interface {
	// CreateAd stores a new ad. The caller assigns the id.
	CreateAd(ctx context.Context, ad domain.Ad) error
	// GetAd returns an ad by id or domain.ErrAdNotFound.
	GetAd(ctx context.Context, id string) (domain.Ad, error)
	// ListAds returns all ads in creation order.
	ListAds(ctx context.Context) ([]domain.Ad, error)
}
