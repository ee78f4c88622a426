// Package grader scores translation-drill answers with a secondary model
// call. There is no stored correct answer for a drill sentence; the model
// judges the submitted translation and returns a score with feedback.
package grader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akiohm/quizlab/internal/extract"
	"github.com/akiohm/quizlab/internal/llm"
)

const systemPrompt = `You are a TOEIC examiner grading English-to-Japanese and Japanese-to-English translations.

Rules:
- Grade accuracy of meaning first, then naturalness of expression.
- Minor stylistic differences from your model translation must not lower the score.
- Score 5 means fully accurate and natural; 0 means the meaning is lost.
- Give feedback in one to three sentences, concrete enough to learn from.`

const responseSchema = `{
    "score": 4.5,
    "feedback": "what was right and what to improve",
    "model_translation": "your own translation of the sentence"
}`

// Evaluation is the model's judgment of one submitted translation.
type Evaluation struct {
	Score            float64 `json:"score"`
	Feedback         string  `json:"feedback"`
	ModelTranslation string  `json:"model_translation"`
}

// EvalSchema validates the extracted grading payload.
var EvalSchema = &llm.Schema{
	Name:        "translation-evaluation",
	Description: "Score and feedback for a submitted translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 5,
			},
			"feedback":          map[string]any{"type": "string"},
			"model_translation": map[string]any{"type": "string"},
		},
		"required": []any{"score", "feedback"},
	},
}

// Config controls the grading call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended defaults. Temperature is zero so the
// same submission grades consistently.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0}
}

// Grader scores translations through an LLM provider.
type Grader struct {
	provider llm.Provider
	config   Config
}

// New creates a Grader.
func New(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, config: cfg}
}

// Score grades a submitted translation of sentence at the given level.
func (g *Grader) Score(ctx context.Context, sentence, translation, level string) (*Evaluation, error) {
	if sentence == "" {
		return nil, fmt.Errorf("sentence is empty")
	}
	if translation == "" {
		return nil, fmt.Errorf("translation is empty")
	}

	ctx = llm.WithPurpose(ctx, "translation-grade")
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(sentence, translation, level)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading call failed: %w", err)
	}

	obj, err := extract.Object(string(resp.Content))
	if err != nil {
		return nil, err
	}
	if err := llm.Validate(EvalSchema, obj); err != nil {
		return nil, err
	}

	var eval Evaluation
	if err := json.Unmarshal(obj, &eval); err != nil {
		return nil, &extract.DecodeError{Raw: string(obj), Err: err}
	}
	return &eval, nil
}

func buildUserMessage(sentence, translation, level string) string {
	msg := fmt.Sprintf("Source sentence:\n%s\n\nSubmitted translation:\n%s\n", sentence, translation)
	if level != "" {
		msg += fmt.Sprintf("\nLearner level: %s\n", level)
	}
	msg += fmt.Sprintf("\nRespond with a single JSON object in exactly this format:\n\n%s\n", responseSchema)
	return msg
}
