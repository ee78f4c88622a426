package grader

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiohm/quizlab/internal/extract"
	"github.com/akiohm/quizlab/internal/llm"
)

func TestScore_ParsesEvaluation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Here is my grading:\n" +
			`{"score":4.5,"feedback":"Accurate, slightly stiff phrasing.","model_translation":"会議は延期されました。"}`),
	})
	g := New(mock, DefaultConfig())

	eval, err := g.Score(context.Background(), "The meeting was postponed.", "会議は延期された。", "TOEIC 700")
	require.NoError(t, err)
	assert.Equal(t, 4.5, eval.Score)
	assert.Contains(t, eval.Feedback, "Accurate")
	assert.NotEmpty(t, eval.ModelTranslation)

	require.Len(t, mock.Calls, 1)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "The meeting was postponed.")
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "TOEIC 700")
}

func TestScore_EmptyInputsRejected(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())

	_, err := g.Score(context.Background(), "", "x", "")
	assert.Error(t, err)
	_, err = g.Score(context.Background(), "x", "", "")
	assert.Error(t, err)
}

func TestScore_NoJSONInResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("I cannot grade this."),
	})
	g := New(mock, DefaultConfig())

	_, err := g.Score(context.Background(), "s", "t", "")
	var noObj *extract.NoObjectError
	require.ErrorAs(t, err, &noObj)
}

func TestScore_SchemaViolation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":"great","feedback":"nice"}`),
	})
	g := New(mock, DefaultConfig())

	_, err := g.Score(context.Background(), "s", "t", "")
	var invalid *llm.ErrInvalidResponse
	require.ErrorAs(t, err, &invalid)
}
