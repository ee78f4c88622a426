package chat

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akiohm/quizlab/internal/llm"
)

func newService(responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func TestAskGroundsQuestionInContent(t *testing.T) {
	s, mock := newService(llm.MockResponse{Content: json.RawMessage("The sky is blue because of Rayleigh scattering.")})

	answer, err := s.Ask(context.Background(), "The sky is blue.", nil, "Why is the sky blue?")
	require.NoError(t, err)
	assert.Equal(t, "The sky is blue because of Rayleigh scattering.", answer)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "The sky is blue.")
	assert.Contains(t, req.Messages[0].Content, "Question: Why is the sky blue?")
}

func TestAskWithoutContent(t *testing.T) {
	s, mock := newService(llm.MockResponse{Content: json.RawMessage("Hello!")})

	_, err := s.Ask(context.Background(), "", nil, "Hi there")
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "Hi there", mock.Calls[0].Messages[0].Content)
}

func TestAskReplaysHistory(t *testing.T) {
	s, mock := newService(llm.MockResponse{Content: json.RawMessage("It was Tuesday.")})

	history := []Turn{
		{Role: "user", Content: "When was the meeting moved?"},
		{Role: "assistant", Content: "The meeting was moved to Tuesday."},
	}
	_, err := s.Ask(context.Background(), "The meeting moved to Tuesday.", history, "Which day was that again?")
	require.NoError(t, err)

	req := mock.Calls[0]
	require.Len(t, req.Messages, 3)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, "When was the meeting moved?", req.Messages[0].Content)
	assert.Equal(t, llm.RoleAssistant, req.Messages[1].Role)
	assert.Equal(t, llm.RoleUser, req.Messages[2].Role)
}

func TestAskCapsHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTurns = 2
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	s := New(mock, cfg)

	history := []Turn{
		{Role: "user", Content: "first"},
		{Role: "assistant", Content: "second"},
		{Role: "user", Content: "third"},
		{Role: "assistant", Content: "fourth"},
	}
	_, err := s.Ask(context.Background(), "", history, "latest")
	require.NoError(t, err)

	req := mock.Calls[0]
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "third", req.Messages[0].Content)
	assert.Equal(t, "fourth", req.Messages[1].Content)
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	s, mock := newService()

	_, err := s.Ask(context.Background(), "content", nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Zero(t, mock.CallCount())
}

func TestAskPropagatesProviderError(t *testing.T) {
	s, _ := newService(llm.MockResponse{Err: &llm.ErrRateLimit{}})

	_, err := s.Ask(context.Background(), "content", nil, "question")
	var rateLimit *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rateLimit)
}
