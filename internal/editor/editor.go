package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// User-facing messages.
const (
	UnsavedChangesMessage = "You have unsaved questions in this quiz. Do you want to discard these changes?"
	deleteConfirmMessage  = "Are you sure you want to delete this question? All students' attempts for this question will also be deleted."
	discardNewMessage     = "This question has never been saved, so any content will be lost. Remove this question?"
	saveErrorMessage      = "There was an error saving this question. Please try again later."
)

// ErrBusy is returned when a save or delete is requested while another one
// is still in flight.
var ErrBusy = errors.New("another operation is in progress")

// Gateway is the transport the editor persists through.
type Gateway interface {
	Question(ctx context.Context, id string) (QuestionDraft, error)
	CreateQuestion(ctx context.Context, quizID string, draft QuestionDraft) (QuestionDraft, error)
	UpdateQuestion(ctx context.Context, id string, draft QuestionDraft) (QuestionDraft, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// Editor drives one question's authoring lifecycle: lazy load, local draft
// edits, validation, save reconciliation and deletion. All state lives in a
// State value updated through Reduce, so every transition is observable.
type Editor struct {
	gateway    Gateway
	quizID     string
	questionID string // id the editor was mounted with; may be temporary
	state      State

	// Confirm asks the user before destructive actions. A nil Confirm
	// means always confirmed (headless use).
	Confirm func(message string) bool
	// OnNewSave tells the parent list that a new question was persisted,
	// passing the temporary id and the server-authoritative draft so the
	// parent can swap the id in its own list.
	OnNewSave func(tempID string, saved QuestionDraft)
	// OnDelete tells the parent list to drop this question.
	OnDelete func()
}

// Config holds the editor's mount parameters.
type Config struct {
	QuizID     string
	QuestionID string
}

// New mounts an editor. A temporary question id mounts a placeholder draft
// already expanded; otherwise the editor starts collapsed. New performs no
// I/O: hosts that want the editor open by default call Expand after mount.
func New(gateway Gateway, cfg Config) *Editor {
	e := &Editor{
		gateway:    gateway,
		quizID:     cfg.QuizID,
		questionID: cfg.QuestionID,
	}
	if IsTemporary(cfg.QuestionID) {
		draft := NewPlaceholderQuestion()
		draft.ID = cfg.QuestionID
		e.state = State{Phase: PhaseExpanded, Draft: &draft, New: true}
	}
	return e
}

// State returns the current editor state value.
func (e *Editor) State() State {
	return e.state
}

// Apply runs a pure edit event through the reducer.
func (e *Editor) Apply(event Event) {
	e.state = Reduce(e.state, event)
}

// currentID is the id save/delete/load must key on: the server-assigned id
// once a formerly-new draft has been saved, the mount id otherwise.
func (e *Editor) currentID() string {
	if e.state.WasNew && e.state.Draft != nil {
		return e.state.Draft.ID
	}
	return e.questionID
}

// Expand lazily loads the full question. Expanding while already expanded
// is a no-op.
func (e *Editor) Expand(ctx context.Context) error {
	if e.state.Phase == PhaseExpanded || e.state.Phase == PhaseLoading {
		return nil
	}
	if e.state.Phase == PhaseFailed {
		e.state = Reduce(e.state, RetryRequested{})
	} else {
		e.state = Reduce(e.state, ExpandRequested{})
	}
	question, err := e.gateway.Question(ctx, e.currentID())
	if err != nil {
		log.Error().Err(err).Str("questionID", e.currentID()).Msg("Failed to load question")
		e.state = Reduce(e.state, LoadFailed{Reason: "Error loading question: " + err.Error()})
		return err
	}
	e.state = Reduce(e.state, LoadSucceeded{Question: question})
	return nil
}

// Save validates the draft and issues a create or update. Validation
// failures are returned before any network call; transport failures leave
// the draft intact and expanded.
func (e *Editor) Save(ctx context.Context) error {
	if e.state.Busy {
		return ErrBusy
	}
	if e.state.Phase != PhaseExpanded || e.state.Draft == nil {
		return nil
	}
	if err := Validate(*e.state.Draft); err != nil {
		return err
	}

	e.state = Reduce(e.state, SaveStarted{})
	draft := *e.state.Draft

	if e.state.New {
		saved, err := e.gateway.CreateQuestion(ctx, e.quizID, draft)
		if err != nil {
			log.Error().Err(err).Str("quizID", e.quizID).Msg("Failed to create question")
			e.state = Reduce(e.state, SaveFailed{Reason: saveErrorMessage})
			return errors.New(saveErrorMessage)
		}
		e.state = Reduce(e.state, SaveSucceeded{Question: saved})
		if e.OnNewSave != nil {
			e.OnNewSave(e.questionID, saved)
		}
		return nil
	}

	saved, err := e.gateway.UpdateQuestion(ctx, e.currentID(), draft)
	if err != nil {
		log.Error().Err(err).Str("questionID", e.currentID()).Msg("Failed to update question")
		e.state = Reduce(e.state, SaveFailed{Reason: saveErrorMessage})
		return errors.New(saveErrorMessage)
	}
	e.state = Reduce(e.state, SaveSucceeded{Question: saved})
	return nil
}

// Delete removes the question after confirmation. A never-persisted draft
// is removed locally without a network call.
func (e *Editor) Delete(ctx context.Context) error {
	if e.state.Busy {
		return ErrBusy
	}
	if !e.confirm(deleteConfirmMessage) {
		return nil
	}

	if e.state.New {
		e.state = Reduce(e.state, DeleteStarted{})
		e.state = Reduce(e.state, DeleteSucceeded{})
		if e.OnDelete != nil {
			e.OnDelete()
		}
		return nil
	}

	id := e.currentID()
	e.state = Reduce(e.state, DeleteStarted{})
	if err := e.gateway.DeleteQuestion(ctx, id); err != nil {
		log.Error().Err(err).Str("questionID", id).Msg("Failed to delete question")
		e.state = Reduce(e.state, DeleteFailed{Reason: "There was an error deleting this question: " + err.Error()})
		return err
	}
	e.state = Reduce(e.state, DeleteSucceeded{})
	if e.OnDelete != nil {
		e.OnDelete()
	}
	return nil
}

// Discard reverts unsaved edits and collapses. Discarding a never-saved
// question removes it entirely (confirming first if it has prompt content).
func (e *Editor) Discard() {
	if e.state.Busy {
		return
	}
	if e.state.New {
		if e.state.Draft != nil && strings.TrimSpace(e.state.Draft.Prompt) != "" {
			if !e.confirm(discardNewMessage) {
				return
			}
		}
		e.state = Reduce(e.state, DeleteStarted{})
		e.state = Reduce(e.state, DeleteSucceeded{})
		if e.OnDelete != nil {
			e.OnDelete()
		}
		return
	}
	e.state = Reduce(e.state, DiscardRequested{})
}

func (e *Editor) confirm(message string) bool {
	if e.Confirm == nil {
		return true
	}
	return e.Confirm(message)
}
