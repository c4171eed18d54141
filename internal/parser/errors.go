package parser

import (
	"fmt"
	"strconv"
	"time"
)

// PreviewChars bounds the raw-model-output preview attached to parse
// failures; full responses can be huge and are never surfaced.
const PreviewChars = 500

// AIParseError indicates the AI round-trip never yielded parseable JSON,
// across both attempts and their repair calls. Preview holds a bounded
// sample of the last raw model output for diagnosis.
type AIParseError struct {
	Preview string
	Err     error
}

func (e *AIParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AI parser produced no parseable JSON: %v (last output: %q)", e.Err, e.Preview)
	}
	return fmt.Sprintf("AI parser produced no parseable JSON (last output: %q)", e.Preview)
}

func (e *AIParseError) Unwrap() error {
	return e.Err
}

// RateLimitError indicates a completion provider returned HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}

// Truncate shortens s to at most maxLen characters, appending an ellipsis
// when truncated.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
