package resilience

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig tunes a CircuitBreaker. A disabled breaker is never
// constructed; callers skip the decorator instead.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Normalize replaces non-positive limits with the defaults.
func (c CircuitBreakerConfig) Normalize() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	c.FailureThreshold = positiveOr(c.FailureThreshold, defaults.FailureThreshold)
	c.HalfOpenMaxReq = positiveOr(c.HalfOpenMaxReq, defaults.HalfOpenMaxReq)
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	return c
}

func (c CircuitBreakerConfig) String() string {
	if !c.Enabled {
		return "disabled"
	}
	return fmt.Sprintf("threshold=%d open_timeout=%s half_open_max=%d", c.FailureThreshold, c.OpenTimeout, c.HalfOpenMaxReq)
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}
