package paypal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/DanielPopoola/checkout-gateway/internal/application"
)

// retry runs operation up to maxRetries times with exponential backoff and jitter.
// Only transient failures are retried.
func retry[T any](ctx context.Context, maxRetries int, baseDelay time.Duration, operation func(ctx context.Context) (*T, error)) (*T, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < maxRetries-1 {
			timer := time.NewTimer(backoff(baseDelay, attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// isRetryable accepts processor 5xx and 429 responses and transport failures.
// Malformed or incomplete token responses are permanent.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if procErr, ok := application.IsProcessorError(err); ok {
		return procErr.StatusCode >= http.StatusInternalServerError || procErr.StatusCode == http.StatusTooManyRequests
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Backoff calculation with exponential delay and jitter
func backoff(baseDelay time.Duration, attempt int) time.Duration {
	base := baseDelay * time.Duration(1<<attempt)

	if baseDelay <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int63n(int64(baseDelay)))

	return base + jitter
}
