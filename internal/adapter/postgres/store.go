package postgres

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
)

// Store implements port.LedgerRepository and port.AdRepository using
// pgxpool for PostgreSQL. Account mutations run in a transaction that
// locks the user row with SELECT ... FOR UPDATE, which serializes writers
// of the same account and leaves other accounts unaffected.
type Store struct {
	pool *pgxpool.Pool
}

var (
	_ port.LedgerRepository = (*Store)(nil)
	_ port.AdRepository     = (*Store)(nil)
)

// NewStore returns a new repository instance.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const userColumns = `id, username, balance, COALESCE(referred_by, ''), payout_handle, created_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Balance, &u.ReferredBy, &u.PayoutHandle, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, err
}

// CreateUser inserts a new user.
func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	tag, err := s.pool.Exec(ctx, `
        INSERT INTO users (id, username, balance, referred_by, payout_handle, created_at)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
        ON CONFLICT (id) DO NOTHING`,
		user.ID, user.Username, user.Balance, user.ReferredBy, user.PayoutHandle, user.CreatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

// GetUser returns a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (domain.User, error) {
	return scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// SetPayoutHandle replaces the payout handle of a user.
func (s *Store) SetPayoutHandle(ctx context.Context, id, handle string) error {
	tag, err := s.pool.Exec(ctx, `UPDATE users SET payout_handle = $1 WHERE id = $2`, handle, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Credit adds points to a user.
func (s *Store) Credit(ctx context.Context, userID string, amount int64, typ domain.TxnType, at time.Time) (int64, error) {
	var balance int64
	err := s.Update(ctx, userID, func(tx port.AccountTx) error {
		var err error
		balance, err = tx.Credit(amount, typ, at)
		return err
	})
	return balance, err
}

// Debit removes points from a user.
func (s *Store) Debit(ctx context.Context, userID string, amount int64, typ domain.TxnType, at time.Time) (int64, error) {
	var balance int64
	err := s.Update(ctx, userID, func(tx port.AccountTx) error {
		var err error
		balance, err = tx.Debit(amount, typ, at)
		return err
	})
	return balance, err
}

// Balance returns the current balance of a user.
func (s *Store) Balance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := s.pool.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1`, userID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrUserNotFound
	}
	return balance, err
}

// History streams the transactions of a user in insertion order.
func (s *Store) History(ctx context.Context, userID string) iter.Seq2[domain.Transaction, error] {
	return func(yield func(domain.Transaction, error) bool) {
		rows, err := s.pool.Query(ctx,
			`SELECT id, user_id, type, amount, created_at FROM transactions WHERE user_id = $1 ORDER BY seq`, userID)
		if err != nil {
			yield(domain.Transaction{}, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var t domain.Transaction
			if err = rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.CreatedAt); err != nil {
				yield(domain.Transaction{}, err)
				return
			}
			if !yield(t, nil) {
				return
			}
		}
		if err = rows.Err(); err != nil {
			yield(domain.Transaction{}, err)
		}
	}
}

// Update runs fn inside a database transaction holding the row lock of
// the user. The transaction is committed only when fn returns nil.
func (s *Store) Update(ctx context.Context, userID string, fn func(tx port.AccountTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	// lock account
	user, err := scanUser(tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, userID))
	if err != nil {
		return err
	}
	return fn(&accountTx{ctx: ctx, tx: tx, user: user})
}

// Referrals returns the users referred by referrerID in registration
// order.
func (s *Store) Referrals(ctx context.Context, referrerID string) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT referred_id FROM referrals WHERE referrer_id = $1 ORDER BY seq`, referrerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// PendingWithdrawal returns the latest withdraw request of a user, or nil
// when there is none.
func (s *Store) PendingWithdrawal(ctx context.Context, userID string) (*domain.WithdrawRequest, error) {
	var (
		req    domain.WithdrawRequest
		amount string
	)
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, points, amount::text, payout_handle, created_at FROM withdraw_requests WHERE user_id = $1`, userID).
		Scan(&req.UserID, &req.Points, &amount, &req.PayoutHandle, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if req.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	return &req, nil
}

// accountTx applies changes to a row-locked account inside tx.
type accountTx struct {
	ctx  context.Context
	tx   pgx.Tx
	user domain.User
}

func (a *accountTx) User() domain.User {
	return a.user
}

func (a *accountTx) LastView(adID string) (time.Time, bool, error) {
	var at time.Time
	err := a.tx.QueryRow(a.ctx,
		`SELECT last_viewed_at FROM ad_views WHERE user_id = $1 AND ad_id = $2`, a.user.ID, adID).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

func (a *accountTx) SetLastView(adID string, at time.Time) error {
	_, err := a.tx.Exec(a.ctx, `
        INSERT INTO ad_views (user_id, ad_id, last_viewed_at) VALUES ($1, $2, $3)
        ON CONFLICT (user_id, ad_id) DO UPDATE SET last_viewed_at = EXCLUDED.last_viewed_at`,
		a.user.ID, adID, at)
	return err
}

func (a *accountTx) Credit(amount int64, typ domain.TxnType, at time.Time) (int64, error) {
	next := a.user
	if err := next.Credit(amount); err != nil {
		return 0, err
	}
	if err := a.apply(next.Balance, domain.NewTransaction(next.ID, typ, amount, at)); err != nil {
		return 0, err
	}
	a.user = next
	return next.Balance, nil
}

func (a *accountTx) Debit(amount int64, typ domain.TxnType, at time.Time) (int64, error) {
	next := a.user
	if err := next.Debit(amount); err != nil {
		return 0, err
	}
	if err := a.apply(next.Balance, domain.NewTransaction(next.ID, typ, -amount, at)); err != nil {
		return 0, err
	}
	a.user = next
	return next.Balance, nil
}

// apply writes the new balance and its transaction.
func (a *accountTx) apply(balance int64, t domain.Transaction) error {
	if _, err := a.tx.Exec(a.ctx, `UPDATE users SET balance = $1 WHERE id = $2`, balance, t.UserID); err != nil {
		return err
	}
	_, err := a.tx.Exec(a.ctx,
		`INSERT INTO transactions (id, user_id, type, amount, created_at) VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.UserID, string(t.Type), t.Amount, t.CreatedAt)
	return err
}

func (a *accountTx) SetWithdrawRequest(req domain.WithdrawRequest) error {
	_, err := a.tx.Exec(a.ctx, `
        INSERT INTO withdraw_requests (user_id, points, amount, payout_handle, created_at)
        VALUES ($1, $2, $3::numeric, $4, $5)
        ON CONFLICT (user_id) DO UPDATE SET
            points = EXCLUDED.points,
            amount = EXCLUDED.amount,
            payout_handle = EXCLUDED.payout_handle,
            created_at = EXCLUDED.created_at`,
		req.UserID, req.Points, req.Amount.String(), req.PayoutHandle, req.CreatedAt)
	return err
}

// AddReferral records that referredID registered with the locked account.
func (a *accountTx) AddReferral(referredID string) error {
	_, err := a.tx.Exec(a.ctx,
		`INSERT INTO referrals (referrer_id, referred_id) VALUES ($1, $2)`, a.user.ID, referredID)
	return err
}
