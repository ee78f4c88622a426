package quizgen

import "github.com/akiohm/quizlab/internal/llm"

// QuizSchema validates the extracted multiple-choice payload.
var QuizSchema = &llm.Schema{
	Name:        "multiple-choice-quiz",
	Description: "A set of 4-choice quiz questions with explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 answer choices",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct choice, byte-identical to one of choices",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct choice is right and the others wrong",
						},
					},
					"required": []any{"question", "choices", "correct_answer", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// TextSchema validates the extracted free-response payload.
var TextSchema = &llm.Schema{
	Name:        "free-response-quiz",
	Description: "A set of free-response questions graded by key points",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":     map[string]any{"type": "string"},
						"model_answer": map[string]any{"type": "string"},
						"key_points": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 3,
							"maxItems": 5,
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"question", "model_answer", "key_points", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// FlashcardSchema validates the extracted flashcard payload.
var FlashcardSchema = &llm.Schema{
	Name:        "vocabulary-flashcards",
	Description: "A set of vocabulary flashcards",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":    map[string]any{"type": "string"},
						"reading": map[string]any{"type": "string"},
						"meaning": map[string]any{"type": "string"},
						"example": map[string]any{"type": "string"},
					},
					"required": []any{"word", "reading", "meaning", "example"},
				},
			},
		},
		"required": []any{"cards"},
	},
}

// PassageSchema validates the extracted passage payload.
var PassageSchema = &llm.Schema{
	Name:        "practice-passage",
	Description: "A practice passage with theme summary and speaker gender",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passage": map[string]any{"type": "string"},
			"theme":   map[string]any{"type": "string"},
			"speaker_gender": map[string]any{
				"type": "string",
				"enum": []any{"male", "female"},
			},
		},
		"required": []any{"passage", "theme", "speaker_gender"},
	},
}
