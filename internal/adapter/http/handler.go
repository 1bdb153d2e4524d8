package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ad-rewards/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a RewardUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.RewardUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. The limiter is
// optional; when nil the API is not rate limited.
func NewHandler(svc port.RewardUseCase, logger *slog.Logger, limiter *RateLimiter) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.Recoverer, h.instrument)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Post("/users", h.handleRegister)
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Put("/payout-handle", h.handleSetPayoutHandle)
			r.Get("/balance", h.handleBalance)
			r.Get("/transactions", h.handleTransactions)
			r.Get("/referrals", h.handleReferrals)
			r.Get("/withdrawal", h.handlePendingWithdrawal)
			r.Post("/withdrawals", h.handleWithdraw)
		})

		r.Get("/ads", h.handleListAds)
		r.Post("/ads", h.handleCreateAd)
		r.Post("/ads/{adID}/views", h.handleRecordView)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}
