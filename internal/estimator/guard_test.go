package estimator

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerationGuard_Supersedes(t *testing.T) {
	g, err := newGenerationGuard(0, 0)
	require.NoError(t, err)

	g.observe("u/s", 1)
	g.observe("u/s", 3)
	g.observe("u/s", 2)

	require.True(t, g.stale("u/s", 1))
	require.True(t, g.stale("u/s", 2))
	require.False(t, g.stale("u/s", 3))
	require.False(t, g.stale("u/other", 1))
	require.False(t, g.stale("u/s", 0))
}

func TestGenerationGuard_EvictsLeastRecentlyUsed(t *testing.T) {
	g, err := newGenerationGuard(2, 0)
	require.NoError(t, err)

	g.observe("a", 5)
	g.observe("b", 5)
	g.observe("a", 6)
	g.observe("c", 5)

	require.Equal(t, 2, g.len())
	// b was the least recently used and is forgotten
	require.False(t, g.stale("b", 1))
	require.True(t, g.stale("a", 1))
	require.True(t, g.stale("c", 1))

	for i := range 100 {
		g.observe("session-"+strconv.Itoa(i), 1)
	}
	require.Equal(t, 2, g.len())
}

func TestGenerationGuard_ExpiresIdleSessions(t *testing.T) {
	g, err := newGenerationGuard(10, time.Minute)
	require.NoError(t, err)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return now }

	g.observe("u/s", 4)
	now = now.Add(30 * time.Second)
	require.True(t, g.stale("u/s", 2))

	now = now.Add(2 * time.Minute)
	require.False(t, g.stale("u/s", 2))
	require.Equal(t, 0, g.len())

	// an expired entry restarts from the new generation
	g.observe("u/s", 2)
	require.False(t, g.stale("u/s", 2))
	require.True(t, g.stale("u/s", 1))
}
