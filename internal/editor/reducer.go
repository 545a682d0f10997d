package editor

// Reduce applies an event to the editor state. It is total: events that do
// not apply in the current phase return the state unchanged.
func Reduce(state State, event Event) State {
	switch ev := event.(type) {
	case ExpandRequested:
		if state.Phase != PhaseCollapsed {
			return state
		}
		state.Phase = PhaseLoading
		state.Err = ""
		return state

	case RetryRequested:
		if state.Phase != PhaseFailed {
			return state
		}
		state.Phase = PhaseLoading
		state.Err = ""
		return state

	case LoadSucceeded:
		if state.Phase != PhaseLoading {
			return state
		}
		draft := ev.Question.clone()
		state.Phase = PhaseExpanded
		state.Draft = &draft
		state.Dirty = false
		return state

	case LoadFailed:
		if state.Phase != PhaseLoading {
			return state
		}
		state.Phase = PhaseFailed
		state.Draft = nil
		state.Err = ev.Reason
		return state

	case PromptEdited:
		return editDraft(state, func(d QuestionDraft) QuestionDraft { return d.WithPrompt(ev.Prompt) })
	case ConceptEdited:
		return editDraft(state, func(d QuestionDraft) QuestionDraft { return d.WithConcept(ev.Concept) })
	case TypeEdited:
		return editDraft(state, func(d QuestionDraft) QuestionDraft { return d.WithType(ev.Type) })
	case OptionTextEdited:
		return editDraft(state, func(d QuestionDraft) QuestionDraft { return d.WithOptionText(ev.Index, ev.Text) })
	case CorrectOptionMarked:
		return editDraft(state, func(d QuestionDraft) QuestionDraft { return d.WithCorrectOption(ev.Index) })
	case ShortAnswerEdited:
		return editDraft(state, func(d QuestionDraft) QuestionDraft { return d.WithShortAnswer(ev.Index, ev.Text) })

	case SaveStarted:
		if state.Phase != PhaseExpanded || state.Busy {
			return state
		}
		state.Busy = true
		state.Err = ""
		return state

	case SaveSucceeded:
		if !state.Busy || state.Deleting {
			return state
		}
		draft := ev.Question.clone()
		state.Draft = &draft
		if state.New {
			state.New = false
			state.WasNew = true
		}
		state.Phase = PhaseCollapsed
		state.Dirty = false
		state.Busy = false
		return state

	case SaveFailed:
		if !state.Busy || state.Deleting {
			return state
		}
		// The draft stays intact and expanded so the instructor can retry.
		state.Busy = false
		state.Err = ev.Reason
		return state

	case DeleteStarted:
		if state.Busy {
			return state
		}
		state.Busy = true
		state.Deleting = true
		state.Phase = PhaseCollapsed
		state.Dirty = false
		state.Err = ""
		return state

	case DeleteSucceeded:
		if !state.Deleting {
			return state
		}
		state.Busy = false
		state.Deleting = false
		state.Draft = nil
		return state

	case DeleteFailed:
		if !state.Deleting {
			return state
		}
		// Restore the collapsed candidate instead of silently disappearing.
		state.Busy = false
		state.Deleting = false
		state.Err = ev.Reason
		return state

	case DiscardRequested:
		if state.Phase != PhaseExpanded || state.Busy {
			return state
		}
		state.Phase = PhaseCollapsed
		state.Draft = nil
		state.Dirty = false
		return state

	default:
		return state
	}
}

func editDraft(state State, edit func(QuestionDraft) QuestionDraft) State {
	if state.Phase != PhaseExpanded || state.Draft == nil || state.Busy {
		return state
	}
	draft := edit(*state.Draft)
	state.Draft = &draft
	state.Dirty = true
	return state
}
