package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ad-rewards/internal/core/domain"
)

// CreateAd inserts a new ad.
func (s *Store) CreateAd(ctx context.Context, ad domain.Ad) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO ads (id, title, description, reward, created_at) VALUES ($1, $2, $3, $4, $5)`,
		ad.ID, ad.Title, ad.Description, ad.Reward, ad.CreatedAt)
	return err
}

// GetAd returns an ad by id.
func (s *Store) GetAd(ctx context.Context, id string) (domain.Ad, error) {
	var ad domain.Ad
	err := s.pool.QueryRow(ctx, `SELECT id, title, description, reward, created_at FROM ads WHERE id = $1`, id).
		Scan(&ad.ID, &ad.Title, &ad.Description, &ad.Reward, &ad.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Ad{}, domain.ErrAdNotFound
	}
	if err != nil {
		return domain.Ad{}, err
	}
	return ad, nil
}

// ListAds returns all ads in creation order.
func (s *Store) ListAds(ctx context.Context) ([]domain.Ad, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, title, description, reward, created_at FROM ads ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		var ad domain.Ad
		err := row.Scan(&ad.ID, &ad.Title, &ad.Description, &ad.Reward, &ad.CreatedAt)
		return ad, err
	})
}
