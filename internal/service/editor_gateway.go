package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/editor"
)

// editorGateway adapts the service layer to the editor's Gateway, so the
// authoring view-model can run in-process (admin tooling, tests) against the
// same code paths the HTTP API uses.
type editorGateway struct {
	questions QuestionService
	quizzes   QuizService
}

func NewEditorGateway(questions QuestionService, quizzes QuizService) editor.Gateway {
	return &editorGateway{questions: questions, quizzes: quizzes}
}

func (g *editorGateway) Question(ctx context.Context, id string) (editor.QuestionDraft, error) {
	questionID, err := parseID(id)
	if err != nil {
		return editor.QuestionDraft{}, err
	}
	question, err := g.quizzes.GetQuestion(questionID)
	if err != nil {
		return editor.QuestionDraft{}, err
	}
	return draftFromResponse(question), nil
}

func (g *editorGateway) CreateQuestion(ctx context.Context, quizID string, draft editor.QuestionDraft) (editor.QuestionDraft, error) {
	id, err := parseID(quizID)
	if err != nil {
		return editor.QuestionDraft{}, err
	}
	created, err := g.questions.CreateQuestion(id, saveFromDraft(draft, false))
	if err != nil {
		return editor.QuestionDraft{}, err
	}
	return draftFromResponse(created), nil
}

func (g *editorGateway) UpdateQuestion(ctx context.Context, id string, draft editor.QuestionDraft) (editor.QuestionDraft, error) {
	questionID, err := parseID(id)
	if err != nil {
		return editor.QuestionDraft{}, err
	}
	updated, err := g.questions.UpdateQuestion(questionID, saveFromDraft(draft, true))
	if err != nil {
		return editor.QuestionDraft{}, err
	}
	return draftFromResponse(updated), nil
}

func (g *editorGateway) DeleteQuestion(ctx context.Context, id string) error {
	questionID, err := parseID(id)
	if err != nil {
		return err
	}
	_, err = g.questions.DeleteQuestion(questionID)
	return err
}

func parseID(id string) (uint, error) {
	value, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return uint(value), nil
}

func draftFromResponse(question *dto.QuestionResponseDTO) editor.QuestionDraft {
	draft := editor.QuestionDraft{
		ID:                  strconv.FormatUint(uint64(question.ID), 10),
		Concept:             question.Concept,
		Prompt:              question.Prompt,
		Type:                question.Type,
		CorrectShortAnswers: question.CorrectShortAnswers,
	}
	for _, option := range question.Options {
		draft.Options = append(draft.Options, editor.OptionDraft{
			ID:        strconv.FormatUint(uint64(option.ID), 10),
			Text:      option.Text,
			IsCorrect: option.IsCorrect,
		})
	}
	return draft
}

// saveFromDraft maps a draft onto the API payload. Option ids are carried
// only on update; the create payload holds text and correctness alone.
func saveFromDraft(draft editor.QuestionDraft, withIDs bool) dto.QuestionSaveDTO {
	req := dto.QuestionSaveDTO{
		Type:                draft.Type,
		Prompt:              draft.Prompt,
		Concept:             draft.Concept,
		CorrectShortAnswers: draft.CorrectShortAnswers,
	}
	for _, option := range draft.Options {
		payload := dto.OptionSaveDTO{Text: option.Text, IsCorrect: option.IsCorrect}
		if withIDs {
			if id, err := parseID(option.ID); err == nil {
				payload.ID = &id
			}
		}
		req.Options = append(req.Options, payload)
	}
	return req
}
