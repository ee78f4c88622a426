package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiohm/quizlab/internal/quizgen"
)

func skyQuiz() []quizgen.QuizItem {
	return []quizgen.QuizItem{
		{
			Question:      "What color is the sky?",
			Choices:       []string{"Red", "Blue", "Green", "Yellow"},
			CorrectAnswer: "Blue",
			Explanation:   "The passage states the sky is blue.",
		},
	}
}

func TestBeginQuiz_EmptyItemsLeavesStateUntouched(t *testing.T) {
	s := New("s1")
	err := s.BeginQuiz(nil)
	assert.ErrorIs(t, err, ErrNoItems)
	assert.Equal(t, PhaseEmpty, s.Phase)
	assert.Equal(t, 0, s.Current)
	assert.Zero(t, s.Score)
}

func TestAnswer_ExactMatchOnly(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		awarded float64
	}{
		{"exact match", "Blue", 1},
		{"different valid choice", "Red", 0},
		{"case difference", "blue", 0},
		{"trailing space", "Blue ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("s1")
			require.NoError(t, s.BeginQuiz(skyQuiz()))

			res, err := s.Answer(tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.awarded, res.Awarded)
			assert.Equal(t, tt.awarded, s.Score)
		})
	}
}

func TestAnswer_SecondSubmitIsNoOp(t *testing.T) {
	s := New("s1")
	require.NoError(t, s.BeginQuiz(skyQuiz()))

	first, err := s.Answer("Blue")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Score)

	// A second submit before advance must not re-score.
	second, err := s.Answer("Blue")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Score)
	assert.Same(t, first, second)
}

func TestAnswer_KeyPointFraction(t *testing.T) {
	s := New("s1")
	require.NoError(t, s.BeginText([]quizgen.TextItem{
		{
			Question:    "Explain it.",
			ModelAnswer: "a, b, and c.",
			KeyPoints:   []string{"a", "b", "c"},
		},
	}))

	res, err := s.Answer("It involves A and also C.")
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, res.Awarded, 1e-9)
	assert.InDelta(t, 2.0/3.0, s.Score, 1e-9)
	assert.False(t, res.Correct)
	assert.Equal(t, []string{"a", "c"}, res.MatchedKeyPoints)
}

func TestAdvance_RejectedBeforeAnswer(t *testing.T) {
	s := New("s1")
	require.NoError(t, s.BeginQuiz(skyQuiz()))

	err := s.Advance()
	assert.ErrorIs(t, err, ErrNotAnswered)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, PhaseInProgress, s.Phase)
}

func TestAdvance_CompletesAtLastItemAndThenNoOps(t *testing.T) {
	s := New("s1")
	require.NoError(t, s.BeginQuiz(skyQuiz()))

	_, err := s.Answer("Blue")
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.Equal(t, 1.0, s.Score)

	// Further advance calls change nothing.
	require.NoError(t, s.Advance())
	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.Equal(t, 1, s.Current)
}

func TestAnswer_AfterCompletionRejected(t *testing.T) {
	s := New("s1")
	require.NoError(t, s.BeginQuiz(skyQuiz()))
	_, _ = s.Answer("Blue")
	_ = s.Advance()

	_, err := s.Answer("Blue")
	assert.ErrorIs(t, err, ErrNoActiveItem)
	assert.Equal(t, 1.0, s.Score)
}

func TestReset_FromAnyState(t *testing.T) {
	midway := New("s1")
	require.NoError(t, midway.BeginQuiz(append(skyQuiz(), skyQuiz()...)))
	_, _ = midway.Answer("Blue")
	require.NoError(t, midway.Advance())

	completed := New("s2")
	require.NoError(t, completed.BeginQuiz(skyQuiz()))
	_, _ = completed.Answer("Blue")
	_ = completed.Advance()

	for _, s := range []*State{midway, completed} {
		s.Reset()
		assert.Equal(t, PhaseEmpty, s.Phase)
		assert.Equal(t, 0, s.Current)
		assert.Zero(t, s.Score)
		assert.False(t, s.Answered)
		assert.Zero(t, s.Len())
	}
}

func TestMultiItemProgression(t *testing.T) {
	items := []quizgen.QuizItem{
		{Question: "q1", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: "a", Explanation: "e"},
		{Question: "q2", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: "b", Explanation: "e"},
		{Question: "q3", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: "c", Explanation: "e"},
	}
	s := New("s1")
	require.NoError(t, s.BeginQuiz(items))

	answers := []string{"a", "d", "c"} // right, wrong, right
	for _, a := range answers {
		_, err := s.Answer(a)
		require.NoError(t, err)
		require.NoError(t, s.Advance())
	}

	assert.Equal(t, PhaseCompleted, s.Phase)
	assert.Equal(t, 2.0, s.Score)
}
