package server

import (
	"crypto/sha256"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
)

// tokenTTL is how long an issued token stays valid. Expired tokens are
// evicted on the next login or validity check that touches them, so the
// token map stays bounded by the number of live sessions.
const tokenTTL = 12 * time.Hour

// gate is the shared-secret access control for the API. A successful login
// issues an opaque token; every other endpoint requires one. Passwords are
// compared in constant time over fixed-length digests so neither the
// content nor the length leaks through timing.
type gate struct {
	secret [sha256.Size]byte
	ttl    time.Duration
	now    func() time.Time

	mu     sync.Mutex
	tokens map[string]time.Time
}

func newGate(password string) *gate {
	return &gate{
		secret: sha256.Sum256([]byte(password)),
		ttl:    tokenTTL,
		now:    time.Now,
		tokens: make(map[string]time.Time),
	}
}

// Login checks the password and issues a token on success. Tokens that
// have outlived the TTL are dropped here, logins being rare enough that a
// full sweep is cheap.
func (g *gate) Login(password string) (string, bool) {
	sum := sha256.Sum256([]byte(password))
	if subtle.ConstantTimeCompare(sum[:], g.secret[:]) != 1 {
		return "", false
	}

	token := uuid.NewString()
	g.mu.Lock()
	defer g.mu.Unlock()
	for t, issued := range g.tokens {
		if g.now().Sub(issued) > g.ttl {
			delete(g.tokens, t)
		}
	}
	g.tokens[token] = g.now()
	return token, true
}

// Valid reports whether token was issued by this gate and has not expired.
func (g *gate) Valid(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	issued, ok := g.tokens[token]
	if !ok {
		return false
	}
	if g.now().Sub(issued) > g.ttl {
		delete(g.tokens, token)
		return false
	}
	return true
}
