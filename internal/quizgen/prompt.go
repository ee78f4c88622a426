package quizgen

import (
	"fmt"
	"strings"
)

// promptSpec is the per-mode template data. Modes differ only in the
// instruction text, the inline payload schema, and the array key the
// extractor looks for; the assembly skeleton is shared.
type promptSpec struct {
	// arrayKey is the top-level key whose array holds the items.
	arrayKey string

	// system sets the model's role for this mode.
	system string

	// rubric is the numbered content/format guideline block.
	rubric string

	// schema is the JSON payload format restated inline so the
	// extractor's assumptions hold. Field names must match the item
	// struct tags exactly.
	schema string
}

var itemSpecs = map[Mode]promptSpec{
	ModeMultipleChoice: {
		arrayKey: "questions",
		system:   "You are a teacher writing multiple-choice comprehension quizzes from provided study material.",
		rubric: `1. Each question must be clear, concise, and ask for exactly one unambiguous answer.
2. The correct choice must be directly derivable from the provided content and must be the only defensible answer.
3. Distractors must be plausible and related to the correct answer, not obviously wrong, not mutually contradictory, and not partially correct.
4. All four choices must be of similar length and detail. Never use "all of the above" or "none of the above".
5. Use only terminology that appears in the content.
6. The explanation must state why the correct choice is the only correct one, cite the content, and say why each other choice is wrong.
7. Re-check every question for ambiguity or multiple defensible answers before responding.`,
		schema: `{
    "questions": [
        {
            "question": "the question text",
            "choices": ["choice A", "choice B", "choice C", "choice D"],
            "correct_answer": "the correct choice, repeated exactly",
            "explanation": "why this is the only correct answer and why the others are wrong"
        }
    ]
}`,
	},
	ModeFreeResponse: {
		arrayKey: "questions",
		system:   "You are a teacher writing free-response questions from provided study material.",
		rubric: `1. Each question must ask for an explanation of a specific concept or piece of information from the content.
2. The model answer must be a concise explanation of one to three sentences.
3. List 3 to 5 key points that a correct answer must contain.
4. The explanation must expand on the model answer and say why each key point matters for grading.`,
		schema: `{
    "questions": [
        {
            "question": "the question text",
            "model_answer": "a concise model answer",
            "key_points": ["key point 1", "key point 2", "key point 3"],
            "explanation": "grading notes and why each key point matters"
        }
    ]
}`,
	},
	ModeFlashcards: {
		arrayKey: "cards",
		system:   "You are a vocabulary tutor building flashcards from provided study material.",
		rubric: `1. Pick the words in the content most worth memorizing for the given proficiency level.
2. Each card needs the word, its reading (pronunciation), a short plain-language meaning, and one example sentence taken from or modeled on the content.
3. Do not pick trivial words the learner already knows at this level.`,
		schema: `{
    "cards": [
        {
            "word": "the vocabulary word",
            "reading": "its pronunciation",
            "meaning": "a short definition",
            "example": "one example sentence using the word"
        }
    ]
}`,
	},
}

// passageSpecs covers the passage-producing modes: a single object payload
// rather than an item array.
var passageSpecs = map[Mode]promptSpec{
	ModeTranslation: {
		system: "You are a TOEIC trainer writing short English passages for translation practice.",
		rubric: `1. Write natural business or everyday English at the requested proficiency level.
2. Use complete sentences; no headings, lists, or dialogue markers.
3. Every sentence must stand on its own well enough to be translated in isolation.`,
	},
	ModeListening: {
		system: "You are a TOEIC trainer writing listening-practice passages to be read aloud by a speech synthesizer.",
		rubric: `1. Write a spoken-style monologue (announcement, voicemail, talk, or news clip) at the requested proficiency level.
2. Target the requested word count within about ten percent.
3. Choose a fresh subject; do not reuse any of the recently used themes listed below.
4. Judge whether a male or female speaker fits the passage and report it.`,
	},
}

const passageSchema = `{
    "passage": "the passage text",
    "theme": "a short summary of the subject matter",
    "speaker_gender": "male or female"
}`

// buildItemMessage renders the user message for an item-array mode.
func buildItemMessage(mode Mode, input GenerateInput) string {
	spec := itemSpecs[mode]

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the content below, generate exactly %d items.\n\n", input.Count)

	b.WriteString("Follow these guidelines strictly:\n")
	b.WriteString(spec.rubric)
	b.WriteString("\n\n")

	if input.Level != "" {
		fmt.Fprintf(&b, "Target proficiency level: %s\n\n", input.Level)
	}

	fmt.Fprintf(&b, "Respond with a single JSON object in exactly this format:\n\n%s\n\n", spec.schema)

	b.WriteString("Content:\n")
	b.WriteString(input.Content)

	return b.String()
}

// buildPassageMessage renders the user message for a passage mode.
func buildPassageMessage(mode Mode, input GenerateInput, cfg Config) string {
	spec := passageSpecs[mode]

	var b strings.Builder
	fmt.Fprintf(&b, "Write one passage of about %d words.\n\n", input.WordCount)

	b.WriteString("Follow these guidelines strictly:\n")
	b.WriteString(spec.rubric)
	b.WriteString("\n\n")

	if input.Level != "" {
		fmt.Fprintf(&b, "Target proficiency level: %s\n", input.Level)
	}
	if len(input.Keywords) > 0 {
		fmt.Fprintf(&b, "Work in these words naturally: %s\n", strings.Join(input.Keywords, ", "))
	}

	b.WriteString("\nRecently used themes (pick something different):\n")
	b.WriteString(buildAvoidThemes(input.AvoidThemes, cfg.MaxAvoidThemes))
	b.WriteString("\n")

	fmt.Fprintf(&b, "\nRespond with a single JSON object in exactly this format:\n\n%s\n", passageSchema)

	return b.String()
}

// ArrayKey returns the extractor array key for an item mode, or "" for
// passage modes.
func ArrayKey(mode Mode) string {
	return itemSpecs[mode].arrayKey
}
