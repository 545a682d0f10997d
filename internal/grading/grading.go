// Package grading scores quiz attempt responses. Multiple-choice responses
// are graded by the chosen option's correctness flag; short answers are
// compared against the accepted answers ignoring case and whitespace.
package grading

import (
	"strings"
	"unicode"

	"github.com/quizpoint/quizpoint/internal/model"
)

// Normalize casefolds a short answer and drops all whitespace, so that
// " New  York " and "newyork" compare equal.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ShortAnswerCorrect reports whether the given answer matches any accepted
// answer after normalization. Blank accepted answers never match.
func ShortAnswerCorrect(answer string, accepted []string) bool {
	normalized := Normalize(answer)
	if normalized == "" {
		return false
	}
	for _, a := range accepted {
		if Normalize(a) == normalized {
			return true
		}
	}
	return false
}

// GradeResponse scores a single response against its question.
func GradeResponse(question *model.Question, optionID *uint, shortAnswer string) bool {
	switch question.Type {
	case model.MultipleChoice:
		if optionID == nil {
			return false
		}
		for _, option := range question.Options {
			if option.ID == *optionID {
				return option.IsCorrect
			}
		}
		return false
	case model.ShortAnswer:
		return ShortAnswerCorrect(shortAnswer, question.CorrectShortAnswers)
	default:
		return false
	}
}

// Score computes the percentage of correct responses. A quiz with no
// questions scores zero.
func Score(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
