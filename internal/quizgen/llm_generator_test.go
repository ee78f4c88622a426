package quizgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiohm/quizlab/internal/extract"
	"github.com/akiohm/quizlab/internal/llm"
)

const skyResponse = "Sure, here is your quiz!\n" +
	`{"questions":[{"question":"What color is the sky?","choices":["Red","Blue","Green","Yellow"],"correct_answer":"Blue","explanation":"The passage states it."}]}` +
	"\nHope that helps."

func newGenerator(responses ...llm.MockResponse) (*LLMGenerator, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func TestGenerateQuiz_RecoversItemsFromChattyResponse(t *testing.T) {
	g, mock := newGenerator(llm.MockResponse{Content: json.RawMessage(skyResponse)})

	items, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "The sky is blue.", Count: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "What color is the sky?", items[0].Question)
	assert.Equal(t, "Blue", items[0].CorrectAnswer)

	require.Len(t, mock.Calls, 1)
	assert.Nil(t, mock.Calls[0].Schema, "item generation must request free text")
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "The sky is blue.")
}

func TestGenerateQuiz_EmptyContentRejectedWithoutModelCall(t *testing.T) {
	g, mock := newGenerator()
	_, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "", Count: 1})
	assert.Error(t, err)
	assert.Zero(t, mock.CallCount())
}

func TestGenerateQuiz_CountOutOfRange(t *testing.T) {
	g, mock := newGenerator()
	for _, count := range []int{0, -1, 11} {
		_, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "c", Count: count})
		assert.Error(t, err, "count %d", count)
	}
	assert.Zero(t, mock.CallCount())
}

func TestGenerateQuiz_NoJSONSpan(t *testing.T) {
	g, _ := newGenerator(llm.MockResponse{Content: json.RawMessage("I'm sorry, I can't do that.")})
	_, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "c", Count: 1})

	var noObj *extract.NoObjectError
	require.ErrorAs(t, err, &noObj)
	assert.Contains(t, noObj.Raw, "I'm sorry")
}

func TestGenerateQuiz_MissingQuestionsKey(t *testing.T) {
	g, _ := newGenerator(llm.MockResponse{Content: json.RawMessage(`{"items":[]}`)})
	_, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "c", Count: 1})

	var missing *extract.MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "questions", missing.Key)
}

func TestGenerateQuiz_CorrectAnswerNotAmongChoices(t *testing.T) {
	bad := `{"questions":[{"question":"q","choices":["a","b","c","d"],"correct_answer":"e","explanation":"x"}]}`
	g, _ := newGenerator(llm.MockResponse{Content: json.RawMessage(bad)})
	_, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "c", Count: 1})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.Index)
}

func TestGenerateQuiz_WrongChoiceCount(t *testing.T) {
	bad := `{"questions":[{"question":"q","choices":["a","b","c"],"correct_answer":"a","explanation":"x"}]}`
	g, _ := newGenerator(llm.MockResponse{Content: json.RawMessage(bad)})
	_, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "c", Count: 1})
	assert.Error(t, err)
}

func TestGenerateText_KeyPointBounds(t *testing.T) {
	good := `{"questions":[{"question":"q","model_answer":"m","key_points":["a","b","c"],"explanation":"x"}]}`
	g, _ := newGenerator(llm.MockResponse{Content: json.RawMessage(good)})
	items, err := g.GenerateText(context.Background(), GenerateInput{Content: "c", Count: 1})
	require.NoError(t, err)
	assert.Len(t, items[0].KeyPoints, 3)

	tooFew := `{"questions":[{"question":"q","model_answer":"m","key_points":["a","b"],"explanation":"x"}]}`
	g2, _ := newGenerator(llm.MockResponse{Content: json.RawMessage(tooFew)})
	_, err = g2.GenerateText(context.Background(), GenerateInput{Content: "c", Count: 1})
	assert.Error(t, err)
}

func TestGenerateFlashcards(t *testing.T) {
	resp := `{"cards":[{"word":"postpone","reading":"pəstˈpoʊn","meaning":"to delay until later","example":"The meeting was postponed."}]}`
	g, _ := newGenerator(llm.MockResponse{Content: json.RawMessage(resp)})

	cards, err := g.GenerateFlashcards(context.Background(), GenerateInput{Content: "c", Count: 1})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "postpone", cards[0].Word)
}

func TestGeneratePassage_Listening(t *testing.T) {
	resp := "Here is the passage.\n" +
		`{"passage":"Attention passengers. Flight 88 to Osaka is now boarding at gate 12.","theme":"airport announcement","speaker_gender":"female"}`
	g, mock := newGenerator(llm.MockResponse{Content: json.RawMessage(resp)})

	p, err := g.GeneratePassage(context.Background(), ModeListening, GenerateInput{
		Level:       "TOEIC 600",
		WordCount:   150,
		AvoidThemes: []string{"museum tour"},
	})
	require.NoError(t, err)
	assert.Equal(t, "airport announcement", p.Theme)
	assert.Equal(t, "female", p.SpeakerGender)
	assert.Equal(t, "TOEIC 600", p.Level)

	assert.Contains(t, mock.Calls[0].Messages[0].Content, "museum tour")
}

func TestGeneratePassage_RejectsItemModes(t *testing.T) {
	g, _ := newGenerator()
	_, err := g.GeneratePassage(context.Background(), ModeMultipleChoice, GenerateInput{})
	assert.Error(t, err)
}

func TestGeneratePassage_BadSpeakerGender(t *testing.T) {
	resp := `{"passage":"text","theme":"t","speaker_gender":"robot"}`
	g, _ := newGenerator(llm.MockResponse{Content: json.RawMessage(resp)})
	_, err := g.GeneratePassage(context.Background(), ModeListening, GenerateInput{WordCount: 100})
	assert.Error(t, err)
}

func TestGenerateQuiz_ProviderErrorSurfaced(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, DefaultConfig())
	_, err := g.GenerateQuiz(context.Background(), GenerateInput{Content: "c", Count: 1})

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}
