package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-rewards/internal/adapter/memory"
	"ad-rewards/internal/adapter/usecase"
	"ad-rewards/internal/core/domain"
	"ad-rewards/internal/core/port/mocks"
)

type testServer struct {
	store *memory.Store
	srv   *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.New()
	svc := usecase.NewRewardUseCase(store, store, nil)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), nil)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return &testServer{store: store, srv: srv}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHTTPEndToEnd(t *testing.T) {
	ts := newTestServer(t)

	status, _ := ts.do(t, http.MethodPost, "/api/v1/users", map[string]any{"user_id": "A", "username": "alice"})
	require.Equal(t, http.StatusCreated, status)
	status, _ = ts.do(t, http.MethodPost, "/api/v1/users", map[string]any{"user_id": "B", "username": "bob", "referred_by": "A"})
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.do(t, http.MethodGet, "/api/v1/users/A/balance", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 10, body["balance"])

	status, body = ts.do(t, http.MethodPost, "/api/v1/ads", map[string]any{"title": "X", "description": "x", "reward": 50})
	require.Equal(t, http.StatusCreated, status)
	adID := body["ad"].(map[string]any)["id"].(string)
	require.NotEmpty(t, adID)

	status, body = ts.do(t, http.MethodPost, "/api/v1/ads/"+adID+"/views", map[string]any{"user_id": "A"})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 60, body["new_balance"])

	status, body = ts.do(t, http.MethodPost, "/api/v1/ads/"+adID+"/views", map[string]any{"user_id": "A"})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrViewTooSoon.Error(), body["error"])

	status, _ = ts.do(t, http.MethodPut, "/api/v1/users/A/payout-handle", map[string]any{"payout_handle": "081234567890"})
	require.Equal(t, http.StatusOK, status)

	status, body = ts.do(t, http.MethodPost, "/api/v1/users/A/withdrawals", map[string]any{"amount": 60})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrBelowMinimum.Error(), body["error"])

	status, body = ts.do(t, http.MethodPost, "/api/v1/users/A/withdrawals", map[string]any{"amount": 1000})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.ErrInsufficientBalance.Error(), body["error"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/users/A/transactions", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["transactions"], 2)

	status, body = ts.do(t, http.MethodGet, "/api/v1/users/A/referrals", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"B"}, body["referrals"])
}

func TestHTTPWithdrawSuccess(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.store.CreateUser(ctx, domain.User{ID: "u"}))
	_, err := ts.store.Credit(ctx, "u", 1500, domain.TxnViewAd, time.Now())
	require.NoError(t, err)
	require.NoError(t, ts.store.SetPayoutHandle(ctx, "u", "0812"))

	status, _ := ts.do(t, http.MethodGet, "/api/v1/users/u/withdrawal", nil)
	require.Equal(t, http.StatusNotFound, status)

	status, body := ts.do(t, http.MethodPost, "/api/v1/users/u/withdrawals", map[string]any{"amount": 1000})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 500, body["remaining_balance"])
	assert.Equal(t, "10000", body["currency_amount"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/users/u/withdrawal", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0812", body["payout_handle"])
	assert.EqualValues(t, 1000, body["points"])
}

func TestHTTPErrorStatuses(t *testing.T) {
	ts := newTestServer(t)
	status, _ := ts.do(t, http.MethodPost, "/api/v1/users", map[string]any{"user_id": "A"})
	require.Equal(t, http.StatusCreated, status)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"duplicate user", http.MethodPost, "/api/v1/users", map[string]any{"user_id": "A"}, http.StatusBadRequest},
		{"unknown user balance", http.MethodGet, "/api/v1/users/ghost/balance", nil, http.StatusNotFound},
		{"unknown user handle", http.MethodPut, "/api/v1/users/ghost/payout-handle", map[string]any{"payout_handle": "1"}, http.StatusNotFound},
		{"empty handle", http.MethodPut, "/api/v1/users/A/payout-handle", map[string]any{"payout_handle": ""}, http.StatusBadRequest},
		{"unknown user view", http.MethodPost, "/api/v1/ads/x/views", map[string]any{"user_id": "ghost"}, http.StatusNotFound},
		{"unknown ad view", http.MethodPost, "/api/v1/ads/x/views", map[string]any{"user_id": "A"}, http.StatusNotFound},
		{"unknown user withdraw", http.MethodPost, "/api/v1/users/ghost/withdrawals", map[string]any{"amount": 1000}, http.StatusNotFound},
		{"below minimum", http.MethodPost, "/api/v1/users/A/withdrawals", map[string]any{"amount": 0}, http.StatusBadRequest},
		{"invalid reward", http.MethodPost, "/api/v1/ads", map[string]any{"title": "t", "reward": -1}, http.StatusBadRequest},
		{"unknown user transactions", http.MethodGet, "/api/v1/users/ghost/transactions", nil, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := ts.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestHTTPInvalidJSON(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.srv.URL+"/api/v1/users", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestHTTPInternalError ensures unexpected failures are hidden behind a
// generic 500 response.
func TestHTTPInternalError(t *testing.T) {
	ads := mocks.NewMockAdRepository(t)
	ads.EXPECT().ListAds(mock.Anything).Return(nil, errors.New("connection refused"))

	svc := usecase.NewRewardUseCase(memory.New(), ads, nil)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ads", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestHTTPListAdsEmpty(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.srv.URL + "/api/v1/ads")
	require.NoError(t, err)
	defer resp.Body.Close()
	var ads []domain.Ad
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ads))
	assert.NotNil(t, ads)
	assert.Empty(t, ads)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1, time.Hour)
	t.Cleanup(limiter.Stop)

	store := memory.New()
	h := NewHandler(usecase.NewRewardUseCase(store, store, nil), slog.New(slog.DiscardHandler), limiter)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ads", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ads", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Health and metrics are not throttled.
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRateLimiterKeepsActiveClients ensures cleanup forgets idle clients
// only, so a throttled client does not get a fresh burst while it keeps
// sending requests.
func TestRateLimiterKeepsActiveClients(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1, time.Hour)
	t.Cleanup(limiter.Stop)
	clock := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	require.True(t, limiter.limiter("active").Allow())
	require.True(t, limiter.limiter("idle").Allow())

	clock = clock.Add(30 * time.Minute)
	assert.False(t, limiter.limiter("active").Allow())

	clock = clock.Add(45 * time.Minute)
	limiter.evictIdle()

	limiter.mu.Lock()
	_, activeKept := limiter.clients["active"]
	_, idleKept := limiter.clients["idle"]
	limiter.mu.Unlock()
	assert.True(t, activeKept)
	assert.False(t, idleKept)

	assert.False(t, limiter.limiter("active").Allow())
}
