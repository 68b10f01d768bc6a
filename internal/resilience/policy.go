// Package resilience holds the retry policy for generation-service calls.
// The retry decision is a pure function of the attempt number and the
// error, so orchestrators can be tested without sleeping or mocking I/O.
package resilience

import (
	"math"
	"math/rand"
	"time"
)

// Policy bounds the retry behavior for one class of operation.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	// A batch therefore sees at most MaxRetries+1 submit attempts.
	MaxRetries int

	// BaseDelay is the backoff before the first retry.
	BaseDelay time.Duration

	// MaxDelay caps the computed backoff.
	MaxDelay time.Duration

	// JitterFraction spreads the delay by ±fraction (0 disables jitter).
	JitterFraction float64
}

// URLPolicy is the retry budget for batched URL lookups.
func URLPolicy() Policy {
	return Policy{
		MaxRetries:     3,
		BaseDelay:      time.Second,
		MaxDelay:       30 * time.Second,
		JitterFraction: 0.25,
	}
}

// DossierPolicy is the tighter budget for per-row dossier generation,
// where each call is considerably more expensive.
func DossierPolicy() Policy {
	return Policy{
		MaxRetries:     1,
		BaseDelay:      2 * time.Second,
		MaxDelay:       30 * time.Second,
		JitterFraction: 0.25,
	}
}

// Decision is the outcome of one failed attempt.
type Decision struct {
	Retry bool
	Delay time.Duration
}

// Decide returns what to do after attempt (1-based: the attempt that just
// failed) produced err. Permanent errors and exhausted budgets give up;
// otherwise the delay is base * 2^(attempt-1), capped, with jitter.
func (p Policy) Decide(attempt int, err error) Decision {
	if err == nil {
		return Decision{}
	}
	if IsPermanent(err) {
		return Decision{}
	}
	if attempt > p.MaxRetries {
		return Decision{}
	}
	return Decision{Retry: true, Delay: p.backoff(attempt)}
}

func (p Policy) backoff(attempt int) time.Duration {
	delay := float64(p.BaseDelay) * math.Pow(2, float64(attempt-1))
	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}

	if p.JitterFraction > 0 {
		jitterRange := delay * p.JitterFraction
		delay += (rand.Float64()*2 - 1) * jitterRange
	}

	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}
