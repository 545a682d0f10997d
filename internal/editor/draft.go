// Package editor is the question-authoring view-model: an immutable draft of
// a single question, a validator, and an explicit state machine driven by a
// pure reducer. It talks to the backend through a Gateway so it can be
// embedded in any client surface and tested without one.
package editor

import (
	"strings"

	"github.com/google/uuid"
)

// Placeholder id prefixes for drafts that have never been persisted.
const (
	tempQuestionPrefix = "_new"
	tempOptionPrefix   = "_newOption"
)

// placeholderOptionCount is how many blank options a fresh multiple-choice
// draft starts with.
const placeholderOptionCount = 8

// OptionDraft is the local copy of one answer option.
type OptionDraft struct {
	ID        string
	Text      string
	IsCorrect bool
}

// QuestionDraft is the locally held, possibly-unsaved copy of a question
// being edited. All mutators return a fresh value and leave the receiver's
// snapshot untouched.
type QuestionDraft struct {
	ID                  string
	Concept             string
	Prompt              string
	Type                string
	Options             []OptionDraft
	CorrectShortAnswers []string
}

// Question types, mirroring the server model.
const (
	MultipleChoice = "multiple_choice"
	ShortAnswer    = "short_answer"
)

// NewPlaceholderQuestion builds the empty draft a newly added question starts
// from: a temporary id, the default type and a fixed number of blank options.
func NewPlaceholderQuestion() QuestionDraft {
	options := make([]OptionDraft, placeholderOptionCount)
	for i := range options {
		options[i] = OptionDraft{ID: tempOptionPrefix + uuid.NewString()}
	}
	return QuestionDraft{
		ID:                  tempQuestionPrefix + uuid.NewString(),
		Type:                MultipleChoice,
		Options:             options,
		CorrectShortAnswers: []string{},
	}
}

// IsTemporary reports whether an id is a locally generated placeholder.
func IsTemporary(id string) bool {
	return strings.HasPrefix(id, tempQuestionPrefix)
}

func (d QuestionDraft) clone() QuestionDraft {
	out := d
	out.Options = make([]OptionDraft, len(d.Options))
	copy(out.Options, d.Options)
	out.CorrectShortAnswers = make([]string, len(d.CorrectShortAnswers))
	copy(out.CorrectShortAnswers, d.CorrectShortAnswers)
	return out
}

// WithPrompt replaces only the prompt.
func (d QuestionDraft) WithPrompt(prompt string) QuestionDraft {
	out := d.clone()
	out.Prompt = prompt
	return out
}

// WithConcept replaces only the concept.
func (d QuestionDraft) WithConcept(concept string) QuestionDraft {
	out := d.clone()
	out.Concept = concept
	return out
}

// WithType replaces only the question type.
func (d QuestionDraft) WithType(questionType string) QuestionDraft {
	out := d.clone()
	out.Type = questionType
	return out
}

// WithOptionText replaces one option's text by index. Out-of-range indexes
// leave the draft unchanged.
func (d QuestionDraft) WithOptionText(index int, text string) QuestionDraft {
	if index < 0 || index >= len(d.Options) {
		return d
	}
	out := d.clone()
	out.Options[index].Text = text
	return out
}

// WithCorrectOption marks the option at index as the correct choice and
// unmarks the previously correct one in the same transition, so no observer
// ever sees two correct options.
func (d QuestionDraft) WithCorrectOption(index int) QuestionDraft {
	if index < 0 || index >= len(d.Options) {
		return d
	}
	out := d.clone()
	for i := range out.Options {
		out.Options[i].IsCorrect = i == index
	}
	return out
}

// WithShortAnswer edits the accepted-answer slot at index. A blank value
// removes the slot; an index one past the end appends a new slot.
func (d QuestionDraft) WithShortAnswer(index int, text string) QuestionDraft {
	if index < 0 || index > len(d.CorrectShortAnswers) {
		return d
	}
	out := d.clone()
	if text == "" {
		if index == len(out.CorrectShortAnswers) {
			return d
		}
		out.CorrectShortAnswers = append(out.CorrectShortAnswers[:index], out.CorrectShortAnswers[index+1:]...)
		return out
	}
	if index == len(out.CorrectShortAnswers) {
		out.CorrectShortAnswers = append(out.CorrectShortAnswers, text)
		return out
	}
	out.CorrectShortAnswers[index] = text
	return out
}
