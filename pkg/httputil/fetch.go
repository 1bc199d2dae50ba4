package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/observability"
)

// MaxSourceSize bounds how much diagram text Fetch will read. Diagram
// sources are small text files; anything larger is a mistake.
const MaxSourceSize = 1 << 20 // 1 MiB

// fetchTimeout bounds a single fetch attempt.
const fetchTimeout = 30 * time.Second

// IsURL reports whether s looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch downloads diagram text from an http(s) URL, retrying transient
// failures with exponential backoff.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	if !IsURL(url) {
		return nil, errors.New(errors.ErrCodeInvalidPath, "not an http(s) URL: %s", url)
	}

	client := &http.Client{Timeout: fetchTimeout}

	var body []byte
	err := RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		observability.HTTP().OnRequest(ctx, http.MethodGet, url)
		start := time.Now()
		resp, err := client.Do(req)
		if err != nil {
			observability.HTTP().OnError(ctx, http.MethodGet, url, err)
			return &RetryableError{Err: err}
		}
		defer resp.Body.Close()
		observability.HTTP().OnResponse(ctx, http.MethodGet, url, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return &RetryableError{Err: fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)}
		case resp.StatusCode == http.StatusNotFound:
			return errors.New(errors.ErrCodeNotFound, "fetch %s: not found", url)
		default:
			return errors.New(errors.ErrCodeInternal, "fetch %s: status %d", url, resp.StatusCode)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, MaxSourceSize+1))
		if err != nil {
			return &RetryableError{Err: err}
		}
		if len(body) > MaxSourceSize {
			return errors.New(errors.ErrCodeInvalidInput, "fetch %s: source exceeds %d bytes", url, MaxSourceSize)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
