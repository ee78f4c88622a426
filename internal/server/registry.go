package server

import (
	"sync"

	"github.com/akiohm/quizlab/internal/chat"
	"github.com/akiohm/quizlab/internal/quizgen"
	"github.com/akiohm/quizlab/internal/session"
)

// sessionEntry is everything the server tracks for one session id: the
// progression state plus the uploaded source content and any non-progressing
// artifacts (flashcards, translation drill, chat history) generated for it.
type sessionEntry struct {
	mu sync.Mutex

	state       *session.State
	content     string
	flashcards  []quizgen.Flashcard
	translation *quizgen.TranslationItem
	chat        []chat.Turn
}

// registry is the in-memory session table. Entries are created on first
// touch; ids are opaque to the server.
type registry struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

func newRegistry() *registry {
	return &registry{entries: make(map[string]*sessionEntry)}
}

func (r *registry) get(id string) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		e = &sessionEntry{state: session.New(id)}
		r.entries[id] = e
	}
	return e
}
