package ratelimiter

import (
	"testing"
	"time"

	"github.com/iotaledger/hive.go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

func TestClientRateLimiter(t *testing.T) {
	limiter, err := NewClientRateLimiter(time.Minute, 3, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer limiter.Close()

	hits := atomic.NewInt32(0)
	limiter.HitEvent().Attach(events.NewClosure(func(key string, limit *RateLimit) {
		assert.Equal(t, "10.0.0.1", key)
		assert.Equal(t, 3, limit.Limit)
		hits.Inc()
	}))

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Count("10.0.0.1"))
	}
	assert.False(t, limiter.Count("10.0.0.1"))
	assert.False(t, limiter.Count("10.0.0.1"))

	// other clients are counted separately
	assert.True(t, limiter.Count("10.0.0.2"))

	// the hit is reported once
	assert.EqualValues(t, 1, hits.Load())
}

func TestClientRateLimiterDisabled(t *testing.T) {
	limiter, err := NewClientRateLimiter(time.Minute, 0, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer limiter.Close()

	for i := 0; i < 100; i++ {
		require.True(t, limiter.Count("10.0.0.1"))
	}
	assert.Equal(t, RateLimit{Interval: time.Minute, Limit: 0}, limiter.Limit())
}

func TestNewClientRateLimiterInvalidInterval(t *testing.T) {
	_, err := NewClientRateLimiter(0, 1, zap.NewNop().Sugar())
	assert.Error(t, err)
}

func TestRateLimitString(t *testing.T) {
	assert.Equal(t, "5 per 1m0s", RateLimit{Interval: time.Minute, Limit: 5}.String())
}
