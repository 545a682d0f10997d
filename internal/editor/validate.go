package editor

import (
	"errors"
	"strings"
)

// Validation failures, in evaluation order. The messages are shown to the
// instructor as-is.
var (
	ErrBlankPrompt       = errors.New("Please enter a prompt for this question")
	ErrBlankConcept      = errors.New("Please enter a concept for this question")
	ErrTooFewOptions     = errors.New("The question must have 2 or more non-blank options")
	ErrNoCorrectOption   = errors.New("There must be a correct option (choose with the radio button to the left of the option).")
	ErrBlankCorrect      = errors.New("The correct option must not be blank")
	ErrNoShortAnswers    = errors.New("There must be at least one non-blank correct short answer.")
	ErrUnknownType       = errors.New("Unknown question type")
)

// Validate checks a draft before it is allowed to save. The first failing
// rule wins; nil means the draft is savable.
func Validate(d QuestionDraft) error {
	if strings.TrimSpace(d.Prompt) == "" {
		return ErrBlankPrompt
	}
	if strings.TrimSpace(d.Concept) == "" {
		return ErrBlankConcept
	}
	switch d.Type {
	case MultipleChoice:
		nonBlank := 0
		hasCorrect := false
		correctBlank := false
		for _, option := range d.Options {
			blank := strings.TrimSpace(option.Text) == ""
			if !blank {
				nonBlank++
			}
			if option.IsCorrect {
				hasCorrect = true
				if blank {
					correctBlank = true
				}
			}
		}
		if nonBlank < 2 {
			return ErrTooFewOptions
		}
		if !hasCorrect {
			return ErrNoCorrectOption
		}
		if correctBlank {
			return ErrBlankCorrect
		}
	case ShortAnswer:
		for _, answer := range d.CorrectShortAnswers {
			if strings.TrimSpace(answer) != "" {
				return nil
			}
		}
		return ErrNoShortAnswers
	default:
		return ErrUnknownType
	}
	return nil
}
