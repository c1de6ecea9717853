package httpclient

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRetryAfter(t *testing.T) {
	delay, err := ParseRetryAfter([]byte(`{"retry_after": 500}`))
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, delay)
}

func TestParseRetryAfter_Float(t *testing.T) {
	delay, err := ParseRetryAfter([]byte(`{"retry_after": 1500.5}`))
	require.NoError(t, err)
	assert.InDelta(t, float64(1500500*time.Microsecond), float64(delay), float64(time.Millisecond))
}

func TestParseRetryAfter_MissingField(t *testing.T) {
	_, err := ParseRetryAfter([]byte(`{"message":"rate limited"}`))
	require.Error(t, err)
}

func TestParseRetryAfter_MalformedBody(t *testing.T) {
	_, err := ParseRetryAfter([]byte(`not json`))
	require.Error(t, err)
}

func TestRateLimitHandler_WaitForRetry(t *testing.T) {
	handler := NewRateLimitHandler(zerolog.Nop())

	start := time.Now()
	err := handler.WaitForRetry(context.Background(), []byte(`{"retry_after": 50}`), "http://example.com")
	require.NoError(t, err)
	// retry_after plus the safety margin.
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestRateLimitHandler_WaitForRetryCancelled(t *testing.T) {
	handler := NewRateLimitHandler(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handler.WaitForRetry(ctx, []byte(`{"retry_after": 10000}`), "http://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimitHandler_WaitForRetryMalformedBody(t *testing.T) {
	handler := NewRateLimitHandler(zerolog.Nop())

	err := handler.WaitForRetry(context.Background(), []byte(`{}`), "http://example.com")
	require.Error(t, err)
}
