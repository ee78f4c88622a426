package quizgen

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain sentences",
			text: "The meeting starts at nine. Please arrive early! Did you bring the report?",
			want: []string{
				"The meeting starts at nine.",
				"Please arrive early!",
				"Did you bring the report?",
			},
		},
		{
			name: "abbreviation does not split",
			text: "Contact Mr. Tanaka today. He is waiting.",
			want: []string{"Contact Mr. Tanaka today.", "He is waiting."},
		},
		{
			name: "no terminal punctuation",
			text: "a fragment without an ending",
			want: []string{"a fragment without an ending"},
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.text))
		})
	}
}

func TestPickSentence(t *testing.T) {
	p := &Passage{
		Text:  "First sentence here. Second sentence there. Third one closes.",
		Level: "TOEIC 600",
	}
	rng := rand.New(rand.NewPCG(1, 2))

	item := PickSentence(rng, p)
	require.NotNil(t, item)
	assert.Contains(t, []string{
		"First sentence here.",
		"Second sentence there.",
		"Third one closes.",
	}, item.Sentence)
	assert.Equal(t, "TOEIC 600", item.Level)
}

func TestPickSentence_EmptyPassage(t *testing.T) {
	assert.Nil(t, PickSentence(nil, &Passage{Text: ""}))
}
