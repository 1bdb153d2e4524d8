package memory

import (
	"context"
	"iter"
	"sync"
	"time"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
)

// account is the unit of locking. Everything that belongs to one user,
// including its view records, lives behind mu.
type account struct {
	mu       sync.Mutex
	user     domain.User
	txns     []domain.Transaction
	views    map[string]time.Time
	withdraw *domain.WithdrawRequest
}

// Store implements port.LedgerRepository and port.AdRepository in memory.
// The store-level locks only guard the indexes; account state is guarded
// by the per-account mutex so that different users never contend.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*account

	adsMu   sync.RWMutex
	ads     map[string]domain.Ad
	adOrder []string

	refMu     sync.Mutex
	referrals map[string][]string
}

var (
	_ port.LedgerRepository = (*Store)(nil)
	_ port.AdRepository     = (*Store)(nil)
)

// New creates an empty store.
func New() *Store {
	return &Store{
		accounts:  make(map[string]*account),
		ads:       make(map[string]domain.Ad),
		referrals: make(map[string][]string),
	}
}

func (s *Store) account(id string) (*account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	return acc, ok
}

// CreateUser stores a new user.
func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[user.ID]; ok {
		return domain.ErrAlreadyExists
	}
	s.accounts[user.ID] = &account{
		user:  user,
		views: make(map[string]time.Time),
	}
	return nil
}

// GetUser returns a copy of the user.
func (s *Store) GetUser(_ context.Context, id string) (domain.User, error) {
	acc, ok := s.account(id)
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.user, nil
}

// SetPayoutHandle replaces the payout handle of a user.
func (s *Store) SetPayoutHandle(_ context.Context, id, handle string) error {
	acc, ok := s.account(id)
	if !ok {
		return domain.ErrUserNotFound
	}
	acc.mu.Lock()
	acc.user.PayoutHandle = handle
	acc.mu.Unlock()
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
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return u.Balance, nil
}

// History yields the transactions of a user. The history is captured when
// iteration starts; entries appended afterwards are not observed.
func (s *Store) History(_ context.Context, userID string) iter.Seq2[domain.Transaction, error] {
	return func(yield func(domain.Transaction, error) bool) {
		acc, ok := s.account(userID)
		if !ok {
			return
		}
		acc.mu.Lock()
		// txns is append-only, so the prefix stays valid after unlocking.
		txns := acc.txns[:len(acc.txns):len(acc.txns)]
		acc.mu.Unlock()

		for _, t := range txns {
			if !yield(t, nil) {
				return
			}
		}
	}
}

// Update runs fn under the account lock and applies its mutations only
// when it succeeds.
func (s *Store) Update(_ context.Context, userID string, fn func(tx port.AccountTx) error) error {
	acc, ok := s.account(userID)
	if !ok {
		return domain.ErrUserNotFound
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()

	tx := &accountTx{store: s, acc: acc, user: acc.user}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Referrals returns a copy of the referral list of referrerID.
func (s *Store) Referrals(_ context.Context, referrerID string) ([]string, error) {
	s.refMu.Lock()
	defer s.refMu.Unlock()
	out := make([]string, len(s.referrals[referrerID]))
	copy(out, s.referrals[referrerID])
	return out, nil
}

// PendingWithdrawal returns the latest withdraw request of a user.
func (s *Store) PendingWithdrawal(_ context.Context, userID string) (*domain.WithdrawRequest, error) {
	acc, ok := s.account(userID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	if acc.withdraw == nil {
		return nil, nil
	}
	req := *acc.withdraw
	return &req, nil
}

// CreateAd stores a new ad.
func (s *Store) CreateAd(_ context.Context, ad domain.Ad) error {
	s.adsMu.Lock()
	defer s.adsMu.Unlock()
	if _, ok := s.ads[ad.ID]; !ok {
		s.adOrder = append(s.adOrder, ad.ID)
	}
	s.ads[ad.ID] = ad
	return nil
}

// GetAd returns an ad by id.
func (s *Store) GetAd(_ context.Context, id string) (domain.Ad, error) {
	s.adsMu.RLock()
	defer s.adsMu.RUnlock()
	ad, ok := s.ads[id]
	if !ok {
		return domain.Ad{}, domain.ErrAdNotFound
	}
	return ad, nil
}

// ListAds returns all ads in creation order.
func (s *Store) ListAds(_ context.Context) ([]domain.Ad, error) {
	s.adsMu.RLock()
	defer s.adsMu.RUnlock()
	out := make([]domain.Ad, 0, len(s.adOrder))
	for _, id := range s.adOrder {
		out = append(out, s.ads[id])
	}
	return out, nil
}

// accountTx stages changes to a locked account.
type accountTx struct {
	store     *Store
	acc       *account
	user      domain.User
	txns      []domain.Transaction
	views     map[string]time.Time
	withdraw  *domain.WithdrawRequest
	referrals []string
}

func (tx *accountTx) User() domain.User {
	return tx.user
}

func (tx *accountTx) LastView(adID string) (time.Time, bool, error) {
	if at, ok := tx.views[adID]; ok {
		return at, true, nil
	}
	at, ok := tx.acc.views[adID]
	return at, ok, nil
}

func (tx *accountTx) SetLastView(adID string, at time.Time) error {
	if tx.views == nil {
		tx.views = make(map[string]time.Time)
	}
	tx.views[adID] = at
	return nil
}

func (tx *accountTx) Credit(amount int64, typ domain.TxnType, at time.Time) (int64, error) {
	if err := tx.user.Credit(amount); err != nil {
		return 0, err
	}
	tx.txns = append(tx.txns, domain.NewTransaction(tx.user.ID, typ, amount, at))
	return tx.user.Balance, nil
}

func (tx *accountTx) Debit(amount int64, typ domain.TxnType, at time.Time) (int64, error) {
	if err := tx.user.Debit(amount); err != nil {
		return 0, err
	}
	tx.txns = append(tx.txns, domain.NewTransaction(tx.user.ID, typ, -amount, at))
	return tx.user.Balance, nil
}

func (tx *accountTx) SetWithdrawRequest(req domain.WithdrawRequest) error {
	tx.withdraw = &req
	return nil
}

func (tx *accountTx) AddReferral(referredID string) error {
	tx.referrals = append(tx.referrals, referredID)
	return nil
}

// commit must be called with the account lock held.
func (tx *accountTx) commit() {
	acc := tx.acc
	acc.user = tx.user
	acc.txns = append(acc.txns, tx.txns...)
	for adID, at := range tx.views {
		acc.views[adID] = at
	}
	if tx.withdraw != nil {
		acc.withdraw = tx.withdraw
	}
	if len(tx.referrals) > 0 {
		s := tx.store
		s.refMu.Lock()
		s.referrals[acc.user.ID] = append(s.referrals[acc.user.ID], tx.referrals...)
		s.refMu.Unlock()
	}
}
