package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterSetSweepsIdleKeys(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := newLimiterSet(RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})
	s.now = func() time.Time { return now }
	s.lastSweep = now

	idle := s.get("idle")
	require.Same(t, idle, s.get("idle"))

	now = now.Add(limiterIdleTTL - time.Minute)
	s.get("busy")
	require.Equal(t, 2, s.size())

	now = now.Add(limiterSweepEvery)
	s.get("busy")
	require.Equal(t, 1, s.size())
	require.NotSame(t, idle, s.get("idle"))
}
