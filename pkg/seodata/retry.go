package seodata

import (
	"context"
	"math"
	"strings"
	"time"
)

// retrier applies bounded retries with exponential backoff. Auth and
// other client errors are not retried; network faults, rate limits and
// server errors are.
type retrier struct {
	maxRetries int
	baseDelay  time.Duration
}

func newRetrier(maxRetries int, baseDelay time.Duration) *retrier {
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	return &retrier{maxRetries: maxRetries, baseDelay: baseDelay}
}

func (r *retrier) execute(ctx context.Context, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxRetries || !retryable(err) {
			break
		}

		delay := time.Duration(float64(r.baseDelay) * math.Pow(2, float64(attempt)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// retryable rules out credential and request-shape failures where a
// retry can only produce the same answer.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"401", "403", "unauthorized", "forbidden", "400", "404"} {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	return true
}
