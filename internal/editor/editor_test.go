package editor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway is an in-memory Gateway that records calls and can be told to
// fail each operation.
type fakeGateway struct {
	questions map[string]QuestionDraft
	nextID    int

	loadCalls   int
	createCalls int
	updateCalls int
	deleteCalls int

	failLoad   error
	failCreate error
	failUpdate error
	failDelete error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{questions: map[string]QuestionDraft{}, nextID: 100}
}

func (g *fakeGateway) Question(_ context.Context, id string) (QuestionDraft, error) {
	g.loadCalls++
	if g.failLoad != nil {
		return QuestionDraft{}, g.failLoad
	}
	question, ok := g.questions[id]
	if !ok {
		return QuestionDraft{}, errors.New("question not found")
	}
	return question, nil
}

func (g *fakeGateway) CreateQuestion(_ context.Context, _ string, draft QuestionDraft) (QuestionDraft, error) {
	g.createCalls++
	if g.failCreate != nil {
		return QuestionDraft{}, g.failCreate
	}
	g.nextID++
	draft.ID = fmt.Sprint(g.nextID)
	g.questions[draft.ID] = draft
	return draft, nil
}

func (g *fakeGateway) UpdateQuestion(_ context.Context, id string, draft QuestionDraft) (QuestionDraft, error) {
	g.updateCalls++
	if g.failUpdate != nil {
		return QuestionDraft{}, g.failUpdate
	}
	draft.ID = id
	g.questions[id] = draft
	return draft, nil
}

func (g *fakeGateway) DeleteQuestion(_ context.Context, id string) error {
	g.deleteCalls++
	if g.failDelete != nil {
		return g.failDelete
	}
	delete(g.questions, id)
	return nil
}

func seedQuestion(g *fakeGateway) QuestionDraft {
	question := validMultipleChoice()
	question.ID = "12"
	g.questions["12"] = question
	return question
}

func TestEditorMountsCollapsedForPersistedQuestion(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)

	e := New(gw, Config{QuizID: "7", QuestionID: "12"})
	assert.Equal(t, PhaseCollapsed, e.State().Phase)
	assert.Nil(t, e.State().Draft)
	assert.Zero(t, gw.loadCalls)
}

func TestEditorExpandLoadsLazilyAndOnce(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})

	require.NoError(t, e.Expand(context.Background()))
	assert.Equal(t, PhaseExpanded, e.State().Phase)
	assert.Equal(t, "12", e.State().Draft.ID)
	assert.False(t, e.State().Dirty)

	// Re-expanding never clobbers the draft with a re-fetch.
	e.Apply(PromptEdited{Prompt: "<p>edited</p>"})
	require.NoError(t, e.Expand(context.Background()))
	assert.Equal(t, "<p>edited</p>", e.State().Draft.Prompt)
	assert.Equal(t, 1, gw.loadCalls)
}

func TestEditorExpandFailureAndRetry(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	gw.failLoad = errors.New("timeout")
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})

	require.Error(t, e.Expand(context.Background()))
	assert.Equal(t, PhaseFailed, e.State().Phase)
	assert.Contains(t, e.State().Err, "timeout")

	gw.failLoad = nil
	require.NoError(t, e.Expand(context.Background()))
	assert.Equal(t, PhaseExpanded, e.State().Phase)
	assert.Empty(t, e.State().Err)
	assert.Equal(t, 2, gw.loadCalls)
}

func TestEditorNewQuestionMountsExpandedPlaceholder(t *testing.T) {
	gw := newFakeGateway()
	e := New(gw, Config{QuizID: "7", QuestionID: "_new-abc"})

	state := e.State()
	assert.Equal(t, PhaseExpanded, state.Phase)
	assert.True(t, state.New)
	require.NotNil(t, state.Draft)
	assert.Equal(t, "_new-abc", state.Draft.ID)
	assert.Len(t, state.Draft.Options, 8)
}

func TestEditorSaveRejectsInvalidDraftBeforeNetwork(t *testing.T) {
	gw := newFakeGateway()
	e := New(gw, Config{QuizID: "7", QuestionID: "_new-abc"})

	err := e.Save(context.Background())
	assert.ErrorIs(t, err, ErrBlankPrompt)
	assert.Zero(t, gw.createCalls)
	assert.Equal(t, PhaseExpanded, e.State().Phase)
}

func TestEditorSaveReconcilesNewQuestion(t *testing.T) {
	gw := newFakeGateway()
	e := New(gw, Config{QuizID: "7", QuestionID: "_new-abc"})

	var gotTempID string
	var gotSaved QuestionDraft
	onNewSaveCalls := 0
	e.OnNewSave = func(tempID string, saved QuestionDraft) {
		onNewSaveCalls++
		gotTempID = tempID
		gotSaved = saved
	}

	e.Apply(PromptEdited{Prompt: "<p>2 + 2 = ?</p>"})
	e.Apply(ConceptEdited{Concept: "Algebra"})
	e.Apply(OptionTextEdited{Index: 0, Text: "3"})
	e.Apply(OptionTextEdited{Index: 1, Text: "4"})
	e.Apply(CorrectOptionMarked{Index: 1})

	require.NoError(t, e.Save(context.Background()))

	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, 1, onNewSaveCalls)
	assert.Equal(t, "_new-abc", gotTempID)
	assert.Equal(t, "101", gotSaved.ID)

	state := e.State()
	assert.Equal(t, PhaseCollapsed, state.Phase)
	assert.False(t, state.New)
	assert.True(t, state.WasNew)
	assert.False(t, state.Dirty)
	assert.Equal(t, "101", state.Draft.ID)
}

func TestEditorSecondSaveAfterReconciliationIsAnUpdate(t *testing.T) {
	gw := newFakeGateway()
	e := New(gw, Config{QuizID: "7", QuestionID: "_new-abc"})

	e.Apply(PromptEdited{Prompt: "<p>2 + 2 = ?</p>"})
	e.Apply(ConceptEdited{Concept: "Algebra"})
	e.Apply(OptionTextEdited{Index: 0, Text: "3"})
	e.Apply(OptionTextEdited{Index: 1, Text: "4"})
	e.Apply(CorrectOptionMarked{Index: 1})
	require.NoError(t, e.Save(context.Background()))

	require.NoError(t, e.Expand(context.Background()))
	e.Apply(PromptEdited{Prompt: "<p>3 + 3 = ?</p>"})
	require.NoError(t, e.Save(context.Background()))

	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, 1, gw.updateCalls)
	assert.Equal(t, "<p>3 + 3 = ?</p>", gw.questions["101"].Prompt)
}

func TestEditorSaveFailureKeepsDraftForRetry(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})
	require.NoError(t, e.Expand(context.Background()))
	e.Apply(ConceptEdited{Concept: "Geometry"})

	gw.failUpdate = errors.New("boom")
	err := e.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, saveErrorMessage, err.Error())

	state := e.State()
	assert.Equal(t, PhaseExpanded, state.Phase)
	assert.True(t, state.Dirty)
	assert.Equal(t, "Geometry", state.Draft.Concept)
	assert.Equal(t, saveErrorMessage, state.Err)

	gw.failUpdate = nil
	require.NoError(t, e.Save(context.Background()))
	assert.Equal(t, PhaseCollapsed, e.State().Phase)
}

func TestEditorSaveWhileBusyReturnsErrBusy(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})
	require.NoError(t, e.Expand(context.Background()))
	e.Apply(SaveStarted{})

	assert.ErrorIs(t, e.Save(context.Background()), ErrBusy)
	assert.ErrorIs(t, e.Delete(context.Background()), ErrBusy)
	assert.Zero(t, gw.updateCalls)
	assert.Zero(t, gw.deleteCalls)
}

func TestEditorDeleteAsksConfirmationFirst(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})

	var asked string
	e.Confirm = func(message string) bool {
		asked = message
		return false
	}

	require.NoError(t, e.Delete(context.Background()))
	assert.Equal(t, deleteConfirmMessage, asked)
	assert.Zero(t, gw.deleteCalls)
}

func TestEditorDeleteNewQuestionIsLocalOnly(t *testing.T) {
	gw := newFakeGateway()
	e := New(gw, Config{QuizID: "7", QuestionID: "_new-abc"})

	deleted := false
	e.OnDelete = func() { deleted = true }

	require.NoError(t, e.Delete(context.Background()))
	assert.True(t, deleted)
	assert.Zero(t, gw.deleteCalls)
	assert.Equal(t, PhaseCollapsed, e.State().Phase)
	assert.Nil(t, e.State().Draft)
}

func TestEditorDeletePersistedQuestion(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})

	deleted := false
	e.OnDelete = func() { deleted = true }

	require.NoError(t, e.Delete(context.Background()))
	assert.True(t, deleted)
	assert.Equal(t, 1, gw.deleteCalls)
	assert.NotContains(t, gw.questions, "12")
}

func TestEditorDeleteFailureRestoresQuestion(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	gw.failDelete = errors.New("offline")
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})
	require.NoError(t, e.Expand(context.Background()))

	deleted := false
	e.OnDelete = func() { deleted = true }

	require.Error(t, e.Delete(context.Background()))
	assert.False(t, deleted)

	state := e.State()
	assert.Equal(t, PhaseCollapsed, state.Phase)
	assert.False(t, state.Busy)
	assert.Contains(t, state.Err, "offline")
	require.NotNil(t, state.Draft)
}

func TestEditorDiscard(t *testing.T) {
	gw := newFakeGateway()
	seedQuestion(gw)
	e := New(gw, Config{QuizID: "7", QuestionID: "12"})
	require.NoError(t, e.Expand(context.Background()))
	e.Apply(ConceptEdited{Concept: "Geometry"})
	require.True(t, e.State().Dirty)

	e.Discard()
	assert.Equal(t, PhaseCollapsed, e.State().Phase)
	assert.False(t, e.State().Dirty)
	assert.Nil(t, e.State().Draft)
}

func TestEditorDiscardNewWithContentConfirms(t *testing.T) {
	gw := newFakeGateway()
	e := New(gw, Config{QuizID: "7", QuestionID: "_new-abc"})
	e.Apply(PromptEdited{Prompt: "<p>typed something</p>"})

	var asked string
	removed := false
	e.Confirm = func(message string) bool {
		asked = message
		return true
	}
	e.OnDelete = func() { removed = true }

	e.Discard()
	assert.Equal(t, discardNewMessage, asked)
	assert.True(t, removed)
	assert.Nil(t, e.State().Draft)
}

func TestEditorDiscardBlankNewSkipsConfirmation(t *testing.T) {
	gw := newFakeGateway()
	e := New(gw, Config{QuizID: "7", QuestionID: "_new-abc"})

	e.Confirm = func(string) bool {
		t.Fatal("blank new question should not need confirmation")
		return false
	}
	e.Discard()
	assert.Nil(t, e.State().Draft)
}
