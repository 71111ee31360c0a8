package breaker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerTripsAfterThreshold(t *testing.T) {
	b := New(3, time.Minute, 2)
	now := time.Now()

	require.True(t, b.Allow(now))
	b.RecordFailure(now)
	require.True(t, b.Allow(now))
	b.RecordFailure(now)
	require.Equal(t, Closed, b.CurrentState())

	b.RecordFailure(now)
	assert.Equal(t, Open, b.CurrentState())
	assert.False(t, b.Allow(now))
}

func TestBreakerHalfOpenThenCloses(t *testing.T) {
	b := New(1, 10*time.Millisecond, 2)
	now := time.Now()

	b.RecordFailure(now)
	require.Equal(t, Open, b.CurrentState())
	assert.False(t, b.Allow(now))

	later := now.Add(20 * time.Millisecond)
	require.True(t, b.Allow(later))
	assert.Equal(t, HalfOpen, b.CurrentState())

	b.RecordSuccess(later)
	assert.Equal(t, HalfOpen, b.CurrentState())
	b.RecordSuccess(later)
	assert.Equal(t, Closed, b.CurrentState())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	b := New(1, 10*time.Millisecond, 2)
	now := time.Now()
	b.RecordFailure(now)

	later := now.Add(20 * time.Millisecond)
	require.True(t, b.Allow(later))
	require.Equal(t, HalfOpen, b.CurrentState())

	b.RecordFailure(later)
	assert.Equal(t, Open, b.CurrentState())
}
