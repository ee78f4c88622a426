package quizgen

// Mode selects which kind of study content to generate. The per-mode
// differences are prompt template and payload schema, not code paths.
type Mode string

const (
	// ModeMultipleChoice generates 4-choice quiz questions from content.
	ModeMultipleChoice Mode = "multiple_choice"

	// ModeFreeResponse generates free-text questions graded by key points.
	ModeFreeResponse Mode = "free_response"

	// ModeFlashcards generates vocabulary flashcards from content.
	ModeFlashcards Mode = "flashcards"

	// ModeTranslation generates a passage whose sentences become
	// translation drill prompts, scored by a secondary grading call.
	ModeTranslation Mode = "translation"

	// ModeListening generates a listening-practice passage for
	// text-to-speech playback.
	ModeListening Mode = "listening"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeMultipleChoice, ModeFreeResponse, ModeFlashcards, ModeTranslation, ModeListening:
		return true
	}
	return false
}

// QuizItem is a single 4-choice question.
// Invariant: len(Choices) == 4 and CorrectAnswer is a member of Choices.
type QuizItem struct {
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// TextItem is a free-response question graded by key-point matching.
type TextItem struct {
	Question    string   `json:"question"`
	ModelAnswer string   `json:"model_answer"`
	KeyPoints   []string `json:"key_points"`
	Explanation string   `json:"explanation"`
}

// Flashcard is a single vocabulary card.
type Flashcard struct {
	Word    string `json:"word"`
	Reading string `json:"reading"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
}

// Passage is a generated text for translation drills or listening practice.
type Passage struct {
	// Text is the passage body.
	Text string `json:"passage"`

	// Theme is a short summary of the subject matter, recorded in the
	// theme log to steer future generations away from repeats.
	Theme string `json:"theme"`

	// SpeakerGender is the voice the model judged fitting for the
	// passage: "male" or "female". Used for TTS voice selection.
	SpeakerGender string `json:"speaker_gender"`

	// Level and WordCount echo the generation parameters.
	Level     string `json:"-"`
	WordCount int    `json:"-"`
}

// TranslationItem is one sentence drawn from a passage, used as a drill
// prompt. There is no stored correct answer; grading is a secondary model
// call.
type TranslationItem struct {
	Sentence string
	Level    string
}

// GenerateInput carries the user-supplied parameters for one generation.
type GenerateInput struct {
	// Content is the uploaded source text the items are based on.
	// Required for quiz, free-response, and flashcard modes.
	Content string

	// Count is the number of items to generate (1-10).
	Count int

	// Level is the target proficiency, e.g. "TOEIC 600" or "beginner".
	Level string

	// WordCount is the target passage length for translation and
	// listening modes.
	WordCount int

	// Keywords are words the passage should work in, when set.
	Keywords []string

	// AvoidThemes lists recently used themes the model should steer
	// away from (listening mode, fed from the theme log).
	AvoidThemes []string
}
