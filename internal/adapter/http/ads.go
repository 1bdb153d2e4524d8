package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port"
)

type createAdRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      int64  `json:"reward"`
}

type createAdResponse struct {
	Message string    `json:"message"`
	Ad      domain.Ad `json:"ad"`
}

type recordViewRequest struct {
	UserID string `json:"user_id"`
}

type recordViewResponse struct {
	Message    string `json:"message"`
	NewBalance int64  `json:"new_balance"`
}

func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.svc.ListAds(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if ads == nil {
		ads = []domain.Ad{}
	}
	h.writeJSON(w, http.StatusOK, ads)
}

// handleCreateAd stores a new ad. Any id in the body is ignored; the
// server assigns one.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var req createAdRequest
	if !h.decode(w, r, &req) {
		return
	}
	ad, err := h.svc.CreateAd(r.Context(), port.CreateAdReq{
		Title:       req.Title,
		Description: req.Description,
		Reward:      req.Reward,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, createAdResponse{Message: "ad created successfully", Ad: ad})
}

// handleRecordView credits the ad reward to the user in the body. Repeated
// views inside the cooldown window result in HTTP 400.
func (h *Handler) handleRecordView(w http.ResponseWriter, r *http.Request) {
	var req recordViewRequest
	if !h.decode(w, r, &req) {
		return
	}
	balance, err := h.svc.RecordView(r.Context(), req.UserID, chi.URLParam(r, "adID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordViewResponse{Message: "ad viewed", NewBalance: balance})
}
