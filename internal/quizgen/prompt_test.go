package quizgen

import (
	"strings"
	"testing"
)

func TestBuildItemMessage_RestatesSchemaInline(t *testing.T) {
	input := GenerateInput{Content: "The sky is blue.", Count: 3, Level: "beginner"}
	msg := buildItemMessage(ModeMultipleChoice, input)

	if !strings.Contains(msg, "generate exactly 3 items") {
		t.Error("missing item count")
	}
	if !strings.Contains(msg, `"questions"`) {
		t.Error("schema block must name the array key")
	}
	for _, field := range []string{`"question"`, `"choices"`, `"correct_answer"`, `"explanation"`} {
		if !strings.Contains(msg, field) {
			t.Errorf("schema block missing field %s", field)
		}
	}
	if !strings.Contains(msg, "Target proficiency level: beginner") {
		t.Error("missing level")
	}
	if !strings.HasSuffix(msg, "The sky is blue.") {
		t.Error("content must close the message")
	}
}

func TestBuildItemMessage_FreeResponseFields(t *testing.T) {
	msg := buildItemMessage(ModeFreeResponse, GenerateInput{Content: "c", Count: 5})
	for _, field := range []string{`"model_answer"`, `"key_points"`} {
		if !strings.Contains(msg, field) {
			t.Errorf("missing field %s", field)
		}
	}
}

func TestBuildItemMessage_FlashcardArrayKey(t *testing.T) {
	msg := buildItemMessage(ModeFlashcards, GenerateInput{Content: "c", Count: 5})
	if !strings.Contains(msg, `"cards"`) {
		t.Error("flashcard payload uses the cards key")
	}
	if ArrayKey(ModeFlashcards) != "cards" {
		t.Errorf("ArrayKey = %q, want cards", ArrayKey(ModeFlashcards))
	}
}

func TestBuildPassageMessage_ListedThemes(t *testing.T) {
	input := GenerateInput{
		WordCount:   150,
		Level:       "TOEIC 600",
		AvoidThemes: []string{"airport announcement", "office voicemail"},
	}
	msg := buildPassageMessage(ModeListening, input, DefaultConfig())

	if !strings.Contains(msg, "about 150 words") {
		t.Error("missing word count")
	}
	if !strings.Contains(msg, "1. airport announcement\n2. office voicemail") {
		t.Error("missing avoid-theme list")
	}
	if !strings.Contains(msg, `"speaker_gender"`) {
		t.Error("schema block missing speaker_gender")
	}
}

func TestBuildPassageMessage_NoHistory(t *testing.T) {
	msg := buildPassageMessage(ModeTranslation, GenerateInput{WordCount: 100}, DefaultConfig())
	if !strings.Contains(msg, "Recently used themes (pick something different):\nNone") {
		t.Error("expected 'None' for empty theme history")
	}
}

func TestBuildAvoidThemes_CapsAtMax(t *testing.T) {
	themes := []string{"a", "b", "c", "d", "e", "f", "g"}
	got := buildAvoidThemes(themes, 5)
	if strings.Contains(got, "1. a") {
		t.Errorf("oldest themes should be dropped, got:\n%s", got)
	}
	if !strings.Contains(got, "1. c") || !strings.Contains(got, "5. g") {
		t.Errorf("expected the 5 most recent themes renumbered from 1, got:\n%s", got)
	}
}
