package quizgen

import "context"

// Generator produces study content using an LLM provider. One method per
// payload shape; all methods run the extraction pipeline and structural
// validation before returning.
type Generator interface {
	// GenerateQuiz produces Count multiple-choice questions from
	// input.Content.
	GenerateQuiz(ctx context.Context, input GenerateInput) ([]QuizItem, error)

	// GenerateText produces Count free-response questions from
	// input.Content.
	GenerateText(ctx context.Context, input GenerateInput) ([]TextItem, error)

	// GenerateFlashcards produces Count vocabulary cards from
	// input.Content.
	GenerateFlashcards(ctx context.Context, input GenerateInput) ([]Flashcard, error)

	// GeneratePassage produces one passage for ModeTranslation or
	// ModeListening.
	GeneratePassage(ctx context.Context, mode Mode, input GenerateInput) (*Passage, error)
}
