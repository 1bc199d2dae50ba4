// Package httputil provides HTTP utilities for fetching remote diagram
// sources.
//
// # Fetching
//
// [Fetch] downloads diagram text from an http(s) URL with a size limit and
// automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// # Retry
//
// [Retry] implements the backoff loop underneath Fetch and is exported for
// other callers. It only retries errors wrapped in [RetryableError]; other
// errors are returned immediately. The delay doubles after each failed
// attempt.
package httputil
