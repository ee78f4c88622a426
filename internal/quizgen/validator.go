package quizgen

import "fmt"

// ValidationError describes why a generated item failed validation.
type ValidationError struct {
	Mode    Mode   // mode being generated
	Index   int    // item index, -1 for payload-level failures
	Message string // human-readable description of the failure
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s item %d: %s", e.Mode, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Mode, e.Message)
}

// validateQuizItems checks the multiple-choice invariants: exactly four
// choices, correct answer present among them (exact string membership),
// no empty fields.
func validateQuizItems(items []QuizItem) *ValidationError {
	if len(items) == 0 {
		return &ValidationError{Mode: ModeMultipleChoice, Index: -1, Message: "no questions generated"}
	}
	for i, q := range items {
		if q.Question == "" {
			return &ValidationError{Mode: ModeMultipleChoice, Index: i, Message: "question is empty"}
		}
		if len(q.Choices) != 4 {
			return &ValidationError{Mode: ModeMultipleChoice, Index: i,
				Message: fmt.Sprintf("expected 4 choices, got %d", len(q.Choices))}
		}
		if !containsExact(q.Choices, q.CorrectAnswer) {
			return &ValidationError{Mode: ModeMultipleChoice, Index: i,
				Message: fmt.Sprintf("correct_answer %q is not one of the choices", q.CorrectAnswer)}
		}
		if q.Explanation == "" {
			return &ValidationError{Mode: ModeMultipleChoice, Index: i, Message: "explanation is empty"}
		}
	}
	return nil
}

// validateTextItems checks the free-response invariants: 3-5 key points,
// no empty fields.
func validateTextItems(items []TextItem) *ValidationError {
	if len(items) == 0 {
		return &ValidationError{Mode: ModeFreeResponse, Index: -1, Message: "no questions generated"}
	}
	for i, q := range items {
		if q.Question == "" {
			return &ValidationError{Mode: ModeFreeResponse, Index: i, Message: "question is empty"}
		}
		if q.ModelAnswer == "" {
			return &ValidationError{Mode: ModeFreeResponse, Index: i, Message: "model_answer is empty"}
		}
		if len(q.KeyPoints) < 3 || len(q.KeyPoints) > 5 {
			return &ValidationError{Mode: ModeFreeResponse, Index: i,
				Message: fmt.Sprintf("expected 3-5 key points, got %d", len(q.KeyPoints))}
		}
	}
	return nil
}

// validateFlashcards checks that every card has a word and a meaning.
func validateFlashcards(cards []Flashcard) *ValidationError {
	if len(cards) == 0 {
		return &ValidationError{Mode: ModeFlashcards, Index: -1, Message: "no cards generated"}
	}
	for i, c := range cards {
		if c.Word == "" {
			return &ValidationError{Mode: ModeFlashcards, Index: i, Message: "word is empty"}
		}
		if c.Meaning == "" {
			return &ValidationError{Mode: ModeFlashcards, Index: i, Message: "meaning is empty"}
		}
	}
	return nil
}

// validatePassage checks that the passage body and theme are present and
// the speaker gender is a known value.
func validatePassage(mode Mode, p *Passage) *ValidationError {
	if p.Text == "" {
		return &ValidationError{Mode: mode, Index: -1, Message: "passage is empty"}
	}
	if p.Theme == "" {
		return &ValidationError{Mode: mode, Index: -1, Message: "theme is empty"}
	}
	if p.SpeakerGender != "male" && p.SpeakerGender != "female" {
		return &ValidationError{Mode: mode, Index: -1,
			Message: fmt.Sprintf("speaker_gender must be \"male\" or \"female\", got %q", p.SpeakerGender)}
	}
	return nil
}

func containsExact(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
