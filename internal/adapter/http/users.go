package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
)

type registerRequest struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	ReferredBy string `json:"referred_by,omitempty"`
}

type payoutHandleRequest struct {
	PayoutHandle string `json:"payout_handle"`
}

type balanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
}

type transactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

type referralsResponse struct {
	Referrals []string `json:"referrals"`
}

// handleRegister creates a user. Duplicate ids result in HTTP 400.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := h.svc.Register(r.Context(), port.RegisterReq{
		UserID:     req.UserID,
		Username:   req.Username,
		ReferredBy: req.ReferredBy,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, messageResponse{Message: "user registered successfully"})
}

// handleSetPayoutHandle sets or replaces the payout handle of the user in
// the path.
func (h *Handler) handleSetPayoutHandle(w http.ResponseWriter, r *http.Request) {
	var req payoutHandleRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.svc.SetPayoutHandle(r.Context(), chi.URLParam(r, "userID"), req.PayoutHandle); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "payout handle set successfully"})
}

func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	balance, err := h.svc.Balance(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, balanceResponse{UserID: userID, Balance: balance})
}

// handleTransactions lists the ledger history of a user. Unknown users
// have an empty history rather than a 404.
func (h *Handler) handleTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.svc.Transactions(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, transactionsResponse{Transactions: txns})
}

func (h *Handler) handleReferrals(w http.ResponseWriter, r *http.Request) {
	refs, err := h.svc.Referrals(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, referralsResponse{Referrals: refs})
}
