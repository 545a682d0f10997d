package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceholderQuestion(t *testing.T) {
	draft := NewPlaceholderQuestion()

	assert.True(t, IsTemporary(draft.ID))
	assert.Equal(t, MultipleChoice, draft.Type)
	assert.Len(t, draft.Options, 8)
	for _, option := range draft.Options {
		assert.Empty(t, option.Text)
		assert.False(t, option.IsCorrect)
	}
	assert.Empty(t, draft.CorrectShortAnswers)
}

func TestWithCorrectOptionIsExclusive(t *testing.T) {
	draft := NewPlaceholderQuestion()

	countCorrect := func(d QuestionDraft) int {
		n := 0
		for _, option := range d.Options {
			if option.IsCorrect {
				n++
			}
		}
		return n
	}

	// Marking any sequence of options leaves exactly one marked.
	for _, i := range []int{0, 3, 3, 7, 1} {
		draft = draft.WithCorrectOption(i)
		require.Equal(t, 1, countCorrect(draft))
		assert.True(t, draft.Options[i].IsCorrect)
	}
}

func TestWithCorrectOptionDoesNotMutatePreviousSnapshot(t *testing.T) {
	before := NewPlaceholderQuestion().WithCorrectOption(0)
	after := before.WithCorrectOption(2)

	assert.True(t, before.Options[0].IsCorrect)
	assert.False(t, before.Options[2].IsCorrect)
	assert.False(t, after.Options[0].IsCorrect)
	assert.True(t, after.Options[2].IsCorrect)
}

func TestWithOptionText(t *testing.T) {
	draft := NewPlaceholderQuestion()

	updated := draft.WithOptionText(1, "mitochondria")
	assert.Equal(t, "mitochondria", updated.Options[1].Text)
	assert.Empty(t, draft.Options[1].Text)

	// Out-of-range edits are ignored.
	assert.Equal(t, updated, updated.WithOptionText(42, "nope"))
	assert.Equal(t, updated, updated.WithOptionText(-1, "nope"))
}

func TestWithShortAnswerBlankRemovesSlot(t *testing.T) {
	draft := QuestionDraft{
		Type:                ShortAnswer,
		CorrectShortAnswers: []string{"cat", "feline", "kitty"},
	}

	updated := draft.WithShortAnswer(1, "")
	assert.Equal(t, []string{"cat", "kitty"}, updated.CorrectShortAnswers)
	// The previous snapshot keeps all three.
	assert.Equal(t, []string{"cat", "feline", "kitty"}, draft.CorrectShortAnswers)
}

func TestWithShortAnswerSetAndAppend(t *testing.T) {
	draft := QuestionDraft{Type: ShortAnswer, CorrectShortAnswers: []string{"cat"}}

	updated := draft.WithShortAnswer(0, "dog")
	assert.Equal(t, []string{"dog"}, updated.CorrectShortAnswers)

	appended := updated.WithShortAnswer(1, "wolf")
	assert.Equal(t, []string{"dog", "wolf"}, appended.CorrectShortAnswers)

	// Blanking the trailing empty slot is a no-op.
	assert.Equal(t, appended, appended.WithShortAnswer(2, ""))
}

func TestFieldEditsReplaceOnlyThatField(t *testing.T) {
	draft := QuestionDraft{
		ID:      "9",
		Concept: "Algebra",
		Prompt:  "<p>Solve</p>",
		Type:    MultipleChoice,
	}

	assert.Equal(t, "Geometry", draft.WithConcept("Geometry").Concept)
	assert.Equal(t, "<p>Solve</p>", draft.WithConcept("Geometry").Prompt)
	assert.Equal(t, ShortAnswer, draft.WithType(ShortAnswer).Type)
	assert.Equal(t, "Algebra", draft.WithType(ShortAnswer).Concept)
	assert.Equal(t, "<p>Prove</p>", draft.WithPrompt("<p>Prove</p>").Prompt)
}
