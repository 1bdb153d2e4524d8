package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PointsCredited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_points_credited_total",
			Help: "Points credited to users by transaction type",
		},
		[]string{"type"},
	)

	PointsDebited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_points_debited_total",
			Help: "Points debited from users by transaction type",
		},
		[]string{"type"},
	)

	ViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_views_total",
			Help: "Ad view attempts by outcome",
		},
		[]string{"result"},
	)

	WithdrawalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reward_withdrawals_total",
			Help: "Withdrawal attempts by outcome",
		},
		[]string{"result"},
	)

	BotUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Bot messages handled by dialogue step",
		},
		[]string{"step"},
	)
)
