package session

import (
	"errors"
	"time"

	"github.com/akiohm/quizlab/internal/quizgen"
)

// ErrNotAnswered is returned by Advance when the current item has not been
// answered yet.
var ErrNotAnswered = errors.New("current item has not been answered")

// ErrNoActiveItem is returned by Answer when no item is under the cursor
// (empty or completed session).
var ErrNoActiveItem = errors.New("no active item to answer")

// ErrNoItems is returned by BeginQuiz and BeginText for an empty item set.
// A failed generation must never move the machine out of its prior state.
var ErrNoItems = errors.New("cannot begin a session with no items")

// BeginQuiz loads multiple-choice items and moves the machine to
// InProgress. Cursor, score, and the answered flag are reset.
func (s *State) BeginQuiz(items []quizgen.QuizItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	s.begin(quizgen.ModeMultipleChoice)
	s.Quiz = items
	return nil
}

// BeginText loads free-response items and moves the machine to InProgress.
func (s *State) BeginText(items []quizgen.TextItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	s.begin(quizgen.ModeFreeResponse)
	s.Text = items
	return nil
}

func (s *State) begin(mode quizgen.Mode) {
	s.Mode = mode
	s.Quiz = nil
	s.Text = nil
	s.Current = 0
	s.Score = 0
	s.Answered = false
	s.Phase = PhaseInProgress
	s.LastResult = nil
	s.StartedAt = time.Now()
}

// Answer scores the submitted answer against the current item and marks it
// answered. Scoring happens exactly once per item: answering an already
// answered item is a no-op returning the recorded result, so a double
// click cannot double-count.
func (s *State) Answer(answer string) (*AnswerResult, error) {
	if s.Phase != PhaseInProgress {
		return nil, ErrNoActiveItem
	}
	if s.Answered {
		return s.LastResult, nil
	}

	var res AnswerResult
	switch s.Mode {
	case quizgen.ModeMultipleChoice:
		res = scoreChoice(&s.Quiz[s.Current], answer)
	case quizgen.ModeFreeResponse:
		res = scoreKeyPoints(&s.Text[s.Current], answer)
	default:
		return nil, ErrNoActiveItem
	}

	s.Score += res.Awarded
	s.Answered = true
	s.LastResult = &res
	return &res, nil
}

// Advance moves the cursor to the next item. It is only permitted after
// the current item has been answered; otherwise the cursor is left
// untouched and ErrNotAnswered is returned. Advancing past the last item
// completes the session. Advance on a completed or empty session is a
// no-op.
func (s *State) Advance() error {
	if s.Phase != PhaseInProgress {
		return nil
	}
	if !s.Answered {
		return ErrNotAnswered
	}

	s.Current++
	s.Answered = false
	s.LastResult = nil
	if s.Current >= s.Len() {
		s.Phase = PhaseCompleted
	}
	return nil
}

// Reset returns the machine to Empty from any state, clearing items,
// cursor, score, and flags.
func (s *State) Reset() {
	s.Mode = ""
	s.Quiz = nil
	s.Text = nil
	s.Current = 0
	s.Score = 0
	s.Answered = false
	s.Phase = PhaseEmpty
	s.LastResult = nil
	s.StartedAt = time.Time{}
}
