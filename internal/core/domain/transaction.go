package domain

import (
	"time"

	"github.com/google/uuid"
)

// TxnType labels the origin of a balance change.
type TxnType string

const (
	TxnViewAd        TxnType = "view_ad"
	TxnWithdraw      TxnType = "withdraw"
	TxnReferralBonus TxnType = "referral_bonus"
)

// Transaction is an append-only ledger entry. Amount is positive for
// credits and negative for debits.
type Transaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      TxnType   `json:"type"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"timestamp"`
}

// NewTransaction builds a ledger entry with a fresh id.
func NewTransaction(userID string, typ TxnType, amount int64, at time.Time) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Amount:    amount,
		CreatedAt: at.UTC(),
	}
}
