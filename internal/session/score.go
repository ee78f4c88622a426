package session

import (
	"strings"

	"github.com/akiohm/quizlab/internal/quizgen"
)

// scoreChoice awards 1 iff the submitted string is byte-for-byte equal to
// the correct answer. No normalization: a different valid choice, extra
// whitespace, or a case difference scores 0.
func scoreChoice(q *quizgen.QuizItem, answer string) AnswerResult {
	if answer == q.CorrectAnswer {
		return AnswerResult{Correct: true, Awarded: 1}
	}
	return AnswerResult{}
}

// scoreKeyPoints awards partial credit: the fraction of key points whose
// lowercased text appears as a literal substring of the lowercased answer.
func scoreKeyPoints(q *quizgen.TextItem, answer string) AnswerResult {
	lowered := strings.ToLower(answer)

	var matched []string
	for _, point := range q.KeyPoints {
		if strings.Contains(lowered, strings.ToLower(point)) {
			matched = append(matched, point)
		}
	}

	total := len(q.KeyPoints)
	if total == 0 {
		return AnswerResult{}
	}
	return AnswerResult{
		Correct:          len(matched) == total,
		Awarded:          float64(len(matched)) / float64(total),
		MatchedKeyPoints: matched,
	}
}
