package mailchimp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cenkalti/backoff/v4"
)

// RetryTransport retries an exchange when the next transport fails to
// connect or Mailchimp answers 429, 502, 503 or 504. Other outcomes are
// returned as-is.
//
// Mailchimp declares no idempotency per operation, so wrapping a transport
// in RetryTransport is an explicit choice of the caller.
type RetryTransport struct {
	next       Transport
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

var _ Transport = (*RetryTransport)(nil)

// RetryOption configures a RetryTransport.
type RetryOption func(*RetryTransport)

// WithBackOff replaces the default exponential backoff.
func WithBackOff(f func() backoff.BackOff) RetryOption {
	return func(t *RetryTransport) {
		t.newBackOff = f
	}
}

// NewRetryTransport wraps next with at most maxRetries retries.
func NewRetryTransport(next Transport, maxRetries uint64, opts ...RetryOption) *RetryTransport {
	t := &RetryTransport{
		next:       next,
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *RetryTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	var last *Response
	op := func() error {
		last = nil
		resp, err := t.next.Send(ctx, req)
		if err != nil {
			var te *TransportError
			if errors.As(err, &te) {
				return err
			}
			return backoff.Permanent(err)
		}
		last = resp
		if retryableStatus(resp.StatusCode) {
			return fmt.Errorf("retryable status %d", resp.StatusCode)
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(t.newBackOff(), t.maxRetries), ctx)
	err := backoff.Retry(op, b)
	if last != nil {
		// Retries exhausted on a retryable status: hand back the final
		// response so the caller can classify it.
		return last, nil
	}
	return nil, err
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
