package httpclient

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// RetryMargin is added on top of the server-provided retry_after delay to
// absorb clock skew between the client and Discord.
const RetryMargin = 150 * time.Millisecond

// ParseRetryAfter extracts the retry_after delay, in milliseconds, from a
// Discord 429 response body.
func ParseRetryAfter(body []byte) (time.Duration, error) {
	var rateLimit struct {
		RetryAfter json.Number `json:"retry_after"`
	}
	if err := json.Unmarshal(body, &rateLimit); err != nil {
		return 0, WrapError(err, "failed to parse rate limit response body")
	}
	if rateLimit.RetryAfter == "" {
		return 0, NewError("rate limit response body has no retry_after field")
	}
	millis, err := rateLimit.RetryAfter.Float64()
	if err != nil {
		return 0, WrapError(err, "invalid retry_after value")
	}
	return time.Duration(millis * float64(time.Millisecond)), nil
}

// RateLimitHandler waits out Discord rate limits between resend attempts.
type RateLimitHandler struct {
	margin time.Duration
	logger zerolog.Logger
}

// NewRateLimitHandler creates a new rate limit handler.
func NewRateLimitHandler(logger zerolog.Logger) *RateLimitHandler {
	return &RateLimitHandler{
		margin: RetryMargin,
		logger: logger.With().Str("component", "RateLimitHandler").Logger(),
	}
}

// WaitForRetry parses the retry_after delay from a 429 response body and
// sleeps it out plus the safety margin. It returns early when the context is
// cancelled.
func (rlh *RateLimitHandler) WaitForRetry(ctx context.Context, body []byte, url string) error {
	retryAfter, err := ParseRetryAfter(body)
	if err != nil {
		return err
	}

	delay := retryAfter + rlh.margin
	rlh.logger.Warn().
		Str("url", url).
		Dur("delay", delay).
		Msg("Rate limited, waiting before resend")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
