// Package session implements the progression state machine for a single
// study session: an ordered sequence of generated items, a cursor, a score
// accumulator, and the answer/advance/reset transitions.
package session

import (
	"time"

	"github.com/akiohm/quizlab/internal/quizgen"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	// PhaseEmpty means no items are loaded. The initial state, and the
	// target of every reset.
	PhaseEmpty Phase = iota

	// PhaseInProgress means items are loaded and the cursor has not
	// passed the last one.
	PhaseInProgress

	// PhaseCompleted means every item has been answered and advanced
	// past. Terminal until reset.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// State tracks one session's progression. All fields are owned by a single
// user session; the caller serializes access.
type State struct {
	// ID identifies the session.
	ID string

	// Mode is the content mode the loaded items belong to.
	Mode quizgen.Mode

	// Quiz holds the items for ModeMultipleChoice sessions.
	Quiz []quizgen.QuizItem

	// Text holds the items for ModeFreeResponse sessions.
	Text []quizgen.TextItem

	// Current is the 0-based cursor into the item sequence. Monotonically
	// increasing until reset.
	Current int

	// Score accumulates 1.0 per correct multiple-choice answer and a
	// key-point fraction per free-response answer.
	Score float64

	// Answered is true once the current item has been scored, until the
	// next advance.
	Answered bool

	// Phase is the machine state.
	Phase Phase

	// LastResult holds the outcome of the most recent answer, for
	// feedback display. Nil before the first answer and after advance.
	LastResult *AnswerResult

	// StartedAt is when items were loaded.
	StartedAt time.Time
}

// AnswerResult reports how one submitted answer was scored.
type AnswerResult struct {
	// Correct is the exact-match verdict for multiple choice. For free
	// response it is true when every key point matched.
	Correct bool

	// Awarded is the score added: 1 or 0 for multiple choice, the
	// matched-fraction for free response.
	Awarded float64

	// MatchedKeyPoints lists the key points found in a free-response
	// answer.
	MatchedKeyPoints []string
}

// New returns an empty session.
func New(id string) *State {
	return &State{ID: id, Phase: PhaseEmpty}
}

// Len returns the number of loaded items.
func (s *State) Len() int {
	switch s.Mode {
	case quizgen.ModeMultipleChoice:
		return len(s.Quiz)
	case quizgen.ModeFreeResponse:
		return len(s.Text)
	}
	return 0
}

// CurrentQuiz returns the quiz item under the cursor, or nil.
func (s *State) CurrentQuiz() *quizgen.QuizItem {
	if s.Phase != PhaseInProgress || s.Mode != quizgen.ModeMultipleChoice {
		return nil
	}
	return &s.Quiz[s.Current]
}

// CurrentText returns the free-response item under the cursor, or nil.
func (s *State) CurrentText() *quizgen.TextItem {
	if s.Phase != PhaseInProgress || s.Mode != quizgen.ModeFreeResponse {
		return nil
	}
	return &s.Text[s.Current]
}
