package quizgen

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

// abbreviations that end with a period without ending a sentence.
var abbreviations = map[string]bool{
	"Mr": true, "Mrs": true, "Ms": true, "Dr": true, "Prof": true,
	"St": true, "vs": true, "etc": true, "Inc": true, "Co": true,
}

// SplitSentences breaks a passage into sentences on terminal punctuation.
// A period ends a sentence only when it is not part of a known
// abbreviation and is followed by whitespace and an upper-case letter, or
// end of text. Good enough for generated TOEIC-style prose.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(strings.TrimSpace(text))
	for i, r := range runes {
		b.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && abbreviations[lastWord(b.String())] {
			continue
		}
		if i+1 < len(runes) {
			// Peek past whitespace for an upper-case sentence start.
			j := i + 1
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j == i+1 || j >= len(runes) || !unicode.IsUpper(runes[j]) {
				continue
			}
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// lastWord returns the word immediately before the trailing period of s.
func lastWord(s string) string {
	s = strings.TrimSuffix(s, ".")
	if idx := strings.LastIndexFunc(s, unicode.IsSpace); idx >= 0 {
		s = s[idx+1:]
	}
	return s
}

// PickSentence selects one sentence from the passage at random as a
// translation drill prompt. Returns nil if the passage has no sentences.
func PickSentence(rng *rand.Rand, p *Passage) *TranslationItem {
	sentences := SplitSentences(p.Text)
	if len(sentences) == 0 {
		return nil
	}
	var idx int
	if rng != nil {
		idx = rng.IntN(len(sentences))
	} else {
		idx = rand.IntN(len(sentences))
	}
	return &TranslationItem{
		Sentence: sentences[idx],
		Level:    p.Level,
	}
}
