package webhook

import (
	"math/rand/v2"
	"time"
)

// Backoff returns the delay before retry number attempt, starting at 1.
type Backoff func(attempt int) time.Duration

// Exponential doubles initial each attempt up to max, then shifts the delay
// by up to jitter (0..1) of itself in either direction.
func Exponential(initial, max time.Duration, jitter float64) Backoff {
	return func(attempt int) time.Duration {
		if attempt <= 0 {
			return 0
		}
		d := initial
		for i := 1; i < attempt && d < max; i++ {
			d *= 2
		}
		if d > max {
			d = max
		}
		if jitter > 0 {
			d = time.Duration(float64(d) * (1 + (rand.Float64()*2-1)*jitter))
		}
		return d
	}
}

func Constant(d time.Duration) Backoff {
	return func(attempt int) time.Duration {
		if attempt <= 0 {
			return 0
		}
		return d
	}
}
