package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateLogin(t *testing.T) {
	g := newGate("secret")

	_, ok := g.Login("wrong")
	assert.False(t, ok)

	token, ok := g.Login("secret")
	require.True(t, ok)
	assert.True(t, g.Valid(token))
	assert.False(t, g.Valid("never-issued"))
	assert.False(t, g.Valid(""))
}

func TestGateTokenExpires(t *testing.T) {
	g := newGate("secret")
	clock := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }

	token, ok := g.Login("secret")
	require.True(t, ok)
	assert.True(t, g.Valid(token))

	clock = clock.Add(g.ttl + time.Minute)
	assert.False(t, g.Valid(token))

	// The expired token was evicted, not just refused.
	g.mu.Lock()
	_, present := g.tokens[token]
	g.mu.Unlock()
	assert.False(t, present)
}

func TestGateLoginSweepsExpiredTokens(t *testing.T) {
	g := newGate("secret")
	clock := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return clock }

	stale, ok := g.Login("secret")
	require.True(t, ok)

	clock = clock.Add(g.ttl + time.Minute)
	fresh, ok := g.Login("secret")
	require.True(t, ok)

	g.mu.Lock()
	_, stalePresent := g.tokens[stale]
	_, freshPresent := g.tokens[fresh]
	g.mu.Unlock()
	assert.False(t, stalePresent)
	assert.True(t, freshPresent)
}
