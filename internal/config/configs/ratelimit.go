package configs

import "time"

// RateLimit configures per-client throttling of the HTTP API. A
// non-positive RPS disables it.
type RateLimit struct {
	RPS             float64       `env:"RPS" envDefault:"20"`
	Burst           int           `env:"BURST" envDefault:"40"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"5m"`
}

// Enabled reports whether requests are throttled.
func (c RateLimit) Enabled() bool {
	return c.RPS > 0
}
