package editor

// Phase is where the editor sits in its expand/load lifecycle.
type Phase int

const (
	// PhaseCollapsed shows only the question summary; no draft is held.
	PhaseCollapsed Phase = iota
	// PhaseLoading means the full question is being fetched.
	PhaseLoading
	// PhaseExpanded holds a full draft open for editing.
	PhaseExpanded
	// PhaseFailed means the last load failed; Retry returns to Loading.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseCollapsed:
		return "collapsed"
	case PhaseLoading:
		return "loading"
	case PhaseExpanded:
		return "expanded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the complete editor state. It is a value; Reduce returns a new
// one and never mutates its input.
type State struct {
	Phase Phase
	// Draft is the question copy under edit. Non-nil only while Expanded
	// (and while a delete of an expanded draft is in flight).
	Draft *QuestionDraft
	// Dirty is set by every draft mutation and cleared on save/discard; it
	// feeds the unsaved-changes navigation guard.
	Dirty bool
	// New means the draft has never been persisted and still has a
	// temporary id.
	New bool
	// WasNew means the draft was created locally but has since been saved;
	// subsequent operations must use the server-assigned id in Draft.ID
	// rather than the id the editor was mounted with.
	WasNew bool
	// Busy blocks a second save or delete from being dispatched while one
	// is in flight.
	Busy bool
	// Deleting distinguishes an in-flight delete from an in-flight save.
	Deleting bool
	// Err is the last user-facing failure message, if any.
	Err string
}

// Event is a single editor transition input.
type Event interface{ isEvent() }

// ExpandRequested asks to open the editor. A no-op while already expanded,
// so in-progress edits are never clobbered by a re-fetch.
type ExpandRequested struct{}

// RetryRequested re-runs a failed load.
type RetryRequested struct{}

// LoadSucceeded delivers the fetched question.
type LoadSucceeded struct{ Question QuestionDraft }

// LoadFailed reports a fetch failure.
type LoadFailed struct{ Reason string }

// PromptEdited, ConceptEdited and TypeEdited replace a single draft field.
type PromptEdited struct{ Prompt string }
type ConceptEdited struct{ Concept string }
type TypeEdited struct{ Type string }

// OptionTextEdited replaces one option's text by index.
type OptionTextEdited struct {
	Index int
	Text  string
}

// CorrectOptionMarked marks the option at Index as the correct choice.
type CorrectOptionMarked struct{ Index int }

// ShortAnswerEdited edits an accepted-answer slot; a blank value removes it.
type ShortAnswerEdited struct {
	Index int
	Text  string
}

// SaveStarted, SaveSucceeded and SaveFailed bracket a save round-trip.
type SaveStarted struct{}
type SaveSucceeded struct{ Question QuestionDraft }
type SaveFailed struct{ Reason string }

// DeleteStarted, DeleteSucceeded and DeleteFailed bracket a delete
// round-trip.
type DeleteStarted struct{}
type DeleteSucceeded struct{}
type DeleteFailed struct{ Reason string }

// DiscardRequested drops the draft and collapses without persisting.
type DiscardRequested struct{}

func (ExpandRequested) isEvent()     {}
func (RetryRequested) isEvent()      {}
func (LoadSucceeded) isEvent()       {}
func (LoadFailed) isEvent()          {}
func (PromptEdited) isEvent()        {}
func (ConceptEdited) isEvent()       {}
func (TypeEdited) isEvent()          {}
func (OptionTextEdited) isEvent()    {}
func (CorrectOptionMarked) isEvent() {}
func (ShortAnswerEdited) isEvent()   {}
func (SaveStarted) isEvent()         {}
func (SaveSucceeded) isEvent()       {}
func (SaveFailed) isEvent()          {}
func (DeleteStarted) isEvent()       {}
func (DeleteSucceeded) isEvent()     {}
func (DeleteFailed) isEvent()        {}
func (DiscardRequested) isEvent()    {}
