package ratelimiter

import (
	"fmt"
	"time"
)

// Config defines a token bucket. It can be loaded from the environment.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"600"`   // burst size
	RefillRate     int           `env:"RATE_LIMIT_REFILL" envDefault:"10"`      // tokens added per interval
	RefillInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1s"`    // how often tokens are added
	Disabled       bool          `env:"RATE_LIMIT_DISABLED" envDefault:"false"` // skip limiting entirely
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

// Result is the outcome of a limit check.
type Result struct {
	Limit          int           // bucket capacity
	Remaining      int           // tokens left; negative when the request was denied
	ResetAt        time.Time     // next refill
	RefillRate     int           // tokens added per refill
	RefillInterval time.Duration // time between refills
}

// Allowed reports whether the request fit into the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied request has to wait until enough tokens
// have been refilled to cover it, 0 for allowed requests. Without refill
// settings it is the time until the next refill.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	wait := max(0, time.Until(r.ResetAt))
	if r.RefillRate > 0 && r.RefillInterval > 0 {
		deficit := -r.Remaining
		refills := (deficit + r.RefillRate - 1) / r.RefillRate
		wait += time.Duration(refills-1) * r.RefillInterval
	}
	return wait
}
