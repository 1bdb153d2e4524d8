package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type withdrawRequest struct {
	Amount int64 `json:"amount"`
}

type withdrawResponse struct {
	Message          string          `json:"message"`
	RemainingBalance int64           `json:"remaining_balance"`
	CurrencyAmount   decimal.Decimal `json:"currency_amount"`
}

type pendingWithdrawalResponse struct {
	UserID       string          `json:"user_id"`
	Points       int64           `json:"points"`
	Amount       decimal.Decimal `json:"amount"`
	PayoutHandle string          `json:"payout_handle"`
	CreatedAt    time.Time       `json:"created_at"`
}

var errNoPendingWithdrawal = errors.New("no pending withdrawal")

// handleWithdraw converts points of the user in the path into a withdraw
// request. Eligibility failures result in HTTP 400 and leave the account
// unchanged.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if !h.decode(w, r, &req) {
		return
	}
	resp, err := h.svc.Withdraw(r.Context(), chi.URLParam(r, "userID"), req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, withdrawResponse{
		Message:          resp.Message,
		RemainingBalance: resp.RemainingBalance,
		CurrencyAmount:   resp.CurrencyAmount,
	})
}

func (h *Handler) handlePendingWithdrawal(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.PendingWithdrawal(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if req == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: errNoPendingWithdrawal.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, pendingWithdrawalResponse{
		UserID:       req.UserID,
		Points:       req.Points,
		Amount:       req.Amount,
		PayoutHandle: req.PayoutHandle,
		CreatedAt:    req.CreatedAt,
	})
}
