// Package chat answers free-form questions about uploaded study material.
// Unlike the generation modes there is no structured payload: the model's
// text is the answer, returned verbatim.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akiohm/quizlab/internal/llm"
)

// ErrEmptyQuestion is returned when the question is blank; no model call
// is made.
var ErrEmptyQuestion = errors.New("question is empty")

const systemPrompt = "You are a study assistant. Answer the user's questions " +
	"using the provided reference material when it is given. When the material " +
	"does not cover the question, say so and answer from general knowledge."

// Turn is one message in a conversation, kept so follow-up questions can
// refer back to earlier answers.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Config bounds the model call.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxTurns caps how much history is replayed per question, oldest
	// dropped first. Zero means no cap.
	MaxTurns int
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
		MaxTurns:    20,
	}
}

// Service runs content-grounded conversations over an LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Ask answers question against content, replaying history so the model
// sees the conversation so far. content may be empty; the question is then
// answered without grounding.
func (s *Service) Ask(ctx context.Context, content string, history []Turn, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}

	if s.config.MaxTurns > 0 && len(history) > s.config.MaxTurns {
		history = history[len(history)-s.config.MaxTurns:]
	}

	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		role := llm.RoleUser
		if turn.Role == string(llm.RoleAssistant) {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: buildQuestion(content, question)})

	ctx = llm.WithPurpose(ctx, "chat")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    messages,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

// buildQuestion grounds the question in the uploaded material when there
// is any.
func buildQuestion(content, question string) string {
	if content == "" {
		return question
	}

	var b strings.Builder
	b.WriteString("Answer the question using the following reference material:\n\n")
	b.WriteString(content)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	return b.String()
}
