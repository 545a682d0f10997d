package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandedState(draft QuestionDraft) State {
	return State{Phase: PhaseExpanded, Draft: &draft}
}

func TestReduceExpandOnlyFromCollapsed(t *testing.T) {
	state := Reduce(State{}, ExpandRequested{})
	assert.Equal(t, PhaseLoading, state.Phase)

	// Re-expanding while loading or expanded changes nothing.
	assert.Equal(t, state, Reduce(state, ExpandRequested{}))

	expanded := expandedState(validMultipleChoice())
	assert.Equal(t, expanded, Reduce(expanded, ExpandRequested{}))
}

func TestReduceRetryOnlyFromFailed(t *testing.T) {
	failed := Reduce(Reduce(State{}, ExpandRequested{}), LoadFailed{Reason: "timeout"})
	require.Equal(t, PhaseFailed, failed.Phase)
	assert.Equal(t, "timeout", failed.Err)

	retried := Reduce(failed, RetryRequested{})
	assert.Equal(t, PhaseLoading, retried.Phase)
	assert.Empty(t, retried.Err)

	// Retry outside of Failed is ignored.
	assert.Equal(t, State{}, Reduce(State{}, RetryRequested{}))
}

func TestReduceLoadDeliversCleanDraft(t *testing.T) {
	loading := Reduce(State{}, ExpandRequested{})
	loaded := Reduce(loading, LoadSucceeded{Question: validMultipleChoice()})

	assert.Equal(t, PhaseExpanded, loaded.Phase)
	require.NotNil(t, loaded.Draft)
	assert.False(t, loaded.Dirty)

	// A stale load completion after the editor left Loading is dropped.
	assert.Equal(t, State{}, Reduce(State{}, LoadSucceeded{Question: validMultipleChoice()}))
}

func TestReduceEditsSetDirtyAndKeepDraftIsolated(t *testing.T) {
	state := expandedState(validMultipleChoice())
	before := *state.Draft

	edited := Reduce(state, PromptEdited{Prompt: "<p>changed</p>"})
	assert.True(t, edited.Dirty)
	assert.Equal(t, "<p>changed</p>", edited.Draft.Prompt)
	assert.Equal(t, before.Prompt, state.Draft.Prompt)

	marked := Reduce(edited, CorrectOptionMarked{Index: 0})
	assert.True(t, marked.Draft.Options[0].IsCorrect)
	assert.False(t, marked.Draft.Options[1].IsCorrect)

	// Edits are ignored while a save is in flight.
	busy := marked
	busy.Busy = true
	assert.Equal(t, busy, Reduce(busy, ConceptEdited{Concept: "Geometry"}))

	// And while collapsed.
	assert.Equal(t, State{}, Reduce(State{}, PromptEdited{Prompt: "x"}))
}

func TestReduceSaveLifecycle(t *testing.T) {
	state := expandedState(validMultipleChoice())
	state.New = true
	state.Dirty = true

	started := Reduce(state, SaveStarted{})
	assert.True(t, started.Busy)

	// A second SaveStarted while busy is a no-op.
	assert.Equal(t, started, Reduce(started, SaveStarted{}))

	saved := validMultipleChoice()
	saved.ID = "101"
	done := Reduce(started, SaveSucceeded{Question: saved})
	assert.Equal(t, PhaseCollapsed, done.Phase)
	assert.False(t, done.Busy)
	assert.False(t, done.Dirty)
	assert.False(t, done.New)
	assert.True(t, done.WasNew)
	assert.Equal(t, "101", done.Draft.ID)
}

func TestReduceSaveFailedKeepsDraftOpen(t *testing.T) {
	state := expandedState(validMultipleChoice())
	state.Dirty = true

	started := Reduce(state, SaveStarted{})
	failed := Reduce(started, SaveFailed{Reason: "boom"})

	assert.Equal(t, PhaseExpanded, failed.Phase)
	assert.False(t, failed.Busy)
	assert.True(t, failed.Dirty)
	assert.Equal(t, "boom", failed.Err)
	require.NotNil(t, failed.Draft)
}

func TestReduceDeleteLifecycle(t *testing.T) {
	state := expandedState(validMultipleChoice())
	state.Dirty = true

	started := Reduce(state, DeleteStarted{})
	assert.Equal(t, PhaseCollapsed, started.Phase)
	assert.True(t, started.Busy)
	assert.True(t, started.Deleting)

	done := Reduce(started, DeleteSucceeded{})
	assert.False(t, done.Busy)
	assert.Nil(t, done.Draft)

	// A failed delete restores the collapsed candidate with the reason.
	failed := Reduce(started, DeleteFailed{Reason: "offline"})
	assert.False(t, failed.Busy)
	assert.False(t, failed.Deleting)
	assert.Equal(t, "offline", failed.Err)
	require.NotNil(t, failed.Draft)

	// Completion events without a delete in flight are dropped.
	assert.Equal(t, State{}, Reduce(State{}, DeleteSucceeded{}))
}

func TestReduceDiscard(t *testing.T) {
	state := expandedState(validMultipleChoice())
	state.Dirty = true

	discarded := Reduce(state, DiscardRequested{})
	assert.Equal(t, PhaseCollapsed, discarded.Phase)
	assert.Nil(t, discarded.Draft)
	assert.False(t, discarded.Dirty)

	busy := Reduce(state, SaveStarted{})
	assert.Equal(t, busy, Reduce(busy, DiscardRequested{}))
}
