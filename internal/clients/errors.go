package clients

import (
	"errors"
	"fmt"
)

// Absent-data conditions. These are not fetch failures: callers branch on
// them with errors.Is and render a "not available" state instead of an error.
var (
	ErrNotFound         = errors.New("video not found")
	ErrCommentsDisabled = errors.New("comments are disabled for this video")
)

// RetryableError marks a transient source failure (429 or 500-504). The
// client retries these itself; one escaping to a caller means the retry
// ceiling was exhausted.
type RetryableError struct {
	StatusCode int
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable source error: status %d", e.StatusCode)
}

// FatalError marks a permanent source failure: any non-retryable status or a
// malformed payload. Never retried.
type FatalError struct {
	StatusCode int
	Reason     string
}

func (e *FatalError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fatal source error: status %d (%s)", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("fatal source error: status %d", e.StatusCode)
}

func isRetryableStatus(status int) bool {
	return status == 429 || (status >= 500 && status <= 504)
}
