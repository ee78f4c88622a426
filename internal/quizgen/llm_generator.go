package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akiohm/quizlab/internal/extract"
	"github.com/akiohm/quizlab/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider. Requests are
// sent without native structured output so the extraction pipeline always
// runs against free-text responses, matching what the weakest provider
// delivers.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

func (g *LLMGenerator) GenerateQuiz(ctx context.Context, input GenerateInput) ([]QuizItem, error) {
	raw, err := g.completeItems(ctx, "quiz-gen", ModeMultipleChoice, input)
	if err != nil {
		return nil, err
	}

	var items []QuizItem
	if err := decodeItems(raw, ArrayKey(ModeMultipleChoice), QuizSchema, &items); err != nil {
		return nil, err
	}
	if verr := validateQuizItems(items); verr != nil {
		return nil, verr
	}
	return items, nil
}

func (g *LLMGenerator) GenerateText(ctx context.Context, input GenerateInput) ([]TextItem, error) {
	raw, err := g.completeItems(ctx, "text-gen", ModeFreeResponse, input)
	if err != nil {
		return nil, err
	}

	var items []TextItem
	if err := decodeItems(raw, ArrayKey(ModeFreeResponse), TextSchema, &items); err != nil {
		return nil, err
	}
	if verr := validateTextItems(items); verr != nil {
		return nil, verr
	}
	return items, nil
}

func (g *LLMGenerator) GenerateFlashcards(ctx context.Context, input GenerateInput) ([]Flashcard, error) {
	raw, err := g.completeItems(ctx, "flashcard-gen", ModeFlashcards, input)
	if err != nil {
		return nil, err
	}

	var cards []Flashcard
	if err := decodeItems(raw, ArrayKey(ModeFlashcards), FlashcardSchema, &cards); err != nil {
		return nil, err
	}
	if verr := validateFlashcards(cards); verr != nil {
		return nil, verr
	}
	return cards, nil
}

func (g *LLMGenerator) GeneratePassage(ctx context.Context, mode Mode, input GenerateInput) (*Passage, error) {
	if mode != ModeTranslation && mode != ModeListening {
		return nil, &InputError{Message: fmt.Sprintf("mode %q does not produce passages", mode)}
	}
	if input.WordCount <= 0 {
		input.WordCount = g.config.DefaultWordCount
	}

	ctx = llm.WithPurpose(ctx, "passage-gen")
	spec := passageSpecs[mode]
	raw, err := g.complete(ctx, spec.system, buildPassageMessage(mode, input, g.config))
	if err != nil {
		return nil, err
	}

	obj, err := extract.Object(raw)
	if err != nil {
		return nil, err
	}
	if err := llm.Validate(PassageSchema, obj); err != nil {
		return nil, err
	}

	var p Passage
	if err := json.Unmarshal(obj, &p); err != nil {
		return nil, &extract.DecodeError{Raw: string(obj), Err: err}
	}
	p.Level = input.Level
	p.WordCount = input.WordCount

	if verr := validatePassage(mode, &p); verr != nil {
		return nil, verr
	}
	return &p, nil
}

// completeItems validates input and runs the model call for an item mode,
// returning the raw free-text response.
func (g *LLMGenerator) completeItems(ctx context.Context, purpose string, mode Mode, input GenerateInput) (string, error) {
	if input.Content == "" {
		return "", &InputError{Message: "content is empty"}
	}
	if input.Count < g.config.MinCount || input.Count > g.config.MaxCount {
		return "", &InputError{Message: fmt.Sprintf("count must be between %d and %d, got %d",
			g.config.MinCount, g.config.MaxCount, input.Count)}
	}

	ctx = llm.WithPurpose(ctx, purpose)
	return g.complete(ctx, itemSpecs[mode].system, buildItemMessage(mode, input))
}

func (g *LLMGenerator) complete(ctx context.Context, system, user string) (string, error) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}
	return string(resp.Content), nil
}

// decodeItems runs the shared extract-validate-decode sequence for an item
// payload. The extract step reports the span/syntax/missing-key taxonomy;
// the schema step catches field-level violations inside well-formed
// payloads.
func decodeItems(raw, key string, schema *llm.Schema, v any) error {
	if err := extract.Items(raw, key, v); err != nil {
		return err
	}

	obj, err := extract.Object(raw)
	if err != nil {
		return err
	}
	return llm.Validate(schema, obj)
}
