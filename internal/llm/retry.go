package llm

import (
	"context"
	"time"
)

// retryClient wraps a Client with bounded retry for transient transport
// failures. Only errors returned by the underlying provider are retried;
// response parsing happens downstream and is never retried here.
type retryClient struct {
	inner      Client
	maxRetries int
	baseDelay  time.Duration
}

// WithRetry wraps a client so each Complete call is retried up to maxRetries
// additional times with exponential backoff. A maxRetries of zero returns the
// client unchanged.
func WithRetry(inner Client, maxRetries int, baseDelay time.Duration) Client {
	if maxRetries <= 0 {
		return inner
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	return &retryClient{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

// Complete calls the underlying client, retrying transient failures.
func (c *retryClient) Complete(ctx context.Context, system, prompt string, tier ModelTier) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay << (attempt - 1)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		text, err := c.inner.Complete(ctx, system, prompt, tier)
		if err == nil {
			return text, nil
		}
		if ctx.Err() != nil {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

// Close releases resources held by the underlying client.
func (c *retryClient) Close() error {
	return c.inner.Close()
}
