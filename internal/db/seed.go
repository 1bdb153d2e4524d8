package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
)

// Seed inserts demo ads into the catalog. Rewards are drawn between 5 and
// 50 points.
func Seed(ctx context.Context, ads port.AdRepository, count int) ([]domain.Ad, error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	categories := []string{"music", "tech", "sports", "food"}

	out := make([]domain.Ad, 0, count)
	for i := 1; i <= count; i++ {
		category := categories[r.Intn(len(categories))]
		ad := domain.Ad{
			ID:          uuid.NewString(),
			Title:       fmt.Sprintf("Demo ad %d", i),
			Description: fmt.Sprintf("Watch a short %s clip and earn points", category),
			Reward:      int64(5 + r.Intn(46)),
			CreatedAt:   time.Now().UTC(),
		}
		if err := ads.CreateAd(ctx, ad); err != nil {
			return nil, fmt.Errorf("seed ad %d: %w", i, err)
		}
		out = append(out, ad)
	}
	return out, nil
}

// SeedIfEmpty seeds count demo ads unless the catalog already holds ads,
// so restarting against a persistent store does not duplicate them. It
// returns the ads it inserted.
func SeedIfEmpty(ctx context.Context, ads port.AdRepository, count int) ([]domain.Ad, error) {
	existing, err := ads.ListAds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	if len(existing) > 0 {
		return nil, nil
	}
	return Seed(ctx, ads, count)
}
