// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil fetches remote listing sources (page markup, feeds and
// data files) with bounded retries.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/praxis-listings/pkg/types"
)

// RetryBaseDelay is the first backoff wait. Tests override it to avoid
// real sleeps.
var RetryBaseDelay = 2 * time.Second

// MaxBodySize caps the size of a fetched source document. Larger documents
// are rejected rather than truncated.
var MaxBodySize int64 = 10 << 20

const defaultMaxRetries = 3

// retryable reports whether a status is worth another attempt.
func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable
}

// DoWithRetry executes req and retries on 429 and 503 responses with
// exponential backoff starting at RetryBaseDelay. A Retry-After header
// given in seconds replaces the computed wait.
//
// When maxRetries is 0 the default (3) is used. If ctx is cancelled during
// a wait the function returns ctx.Err(). After exhausting retries the last
// response is returned unread so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	backoff := RetryBaseDelay
	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}
		if !retryable(resp.StatusCode) || attempt >= maxRetries {
			return resp, nil
		}

		wait := backoff
		if secs, err := time.ParseDuration(resp.Header.Get("Retry-After") + "s"); err == nil && secs > 0 {
			wait = secs
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		backoff *= 2
	}
}

// Get fetches url and returns the body of a 200 response. A body larger
// than MaxBodySize is an error.
func Get(ctx context.Context, client *http.Client, url string, cfg types.HTTPConfig) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(data)) > MaxBodySize {
		return nil, fmt.Errorf("reading %s: body exceeds %d bytes", url, MaxBodySize)
	}
	return data, nil
}
