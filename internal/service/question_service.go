package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/editor"
	"github.com/quizpoint/quizpoint/internal/model"
	"github.com/quizpoint/quizpoint/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionService is the instructor-facing authoring surface: create,
// update and delete questions. Payloads are re-validated with the same
// rules the editor applies, so an invalid question cannot be persisted by
// bypassing the editor.
type QuestionService interface {
	CreateQuestion(quizID uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(id uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error)
	// DeleteQuestion removes the question together with its options and all
	// student responses referencing it.
	DeleteQuestion(id uint) (*dto.DeletedQuestionDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, quizRepo: quizRepo}
}

// draftFromSave maps a save payload onto an editor draft for validation.
func draftFromSave(req dto.QuestionSaveDTO) editor.QuestionDraft {
	draft := editor.QuestionDraft{
		Prompt:              req.Prompt,
		Concept:             req.Concept,
		Type:                req.Type,
		CorrectShortAnswers: req.CorrectShortAnswers,
	}
	for _, option := range req.Options {
		draft.Options = append(draft.Options, editor.OptionDraft{
			Text:      option.Text,
			IsCorrect: option.IsCorrect,
		})
	}
	return draft
}

func (s *questionService) CreateQuestion(quizID uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Invalid quiz for question creation")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}
	if err := editor.Validate(draftFromSave(req)); err != nil {
		return nil, err
	}

	existing, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("error fetching quiz questions: %w", err)
	}

	question := model.Question{
		QuizID:              quizID,
		Concept:             req.Concept,
		Prompt:              req.Prompt,
		Type:                req.Type,
		OrderInQuiz:         len(existing) + 1,
		CorrectShortAnswers: req.CorrectShortAnswers,
	}
	// Create carries text and correctness only; ids are server-assigned.
	for _, option := range req.Options {
		question.Options = append(question.Options, model.Option{
			Text:      option.Text,
			IsCorrect: option.IsCorrect,
		})
	}
	if question.CorrectShortAnswers == nil {
		question.CorrectShortAnswers = []string{}
	}

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to create question")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	created, err := s.questionRepo.FindByIDWithOptions(question.ID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", question.ID).Msg("Failed to reload question after creation")
		var fallback dto.QuestionResponseDTO
		if err := copier.Copy(&fallback, &question); err != nil {
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
		return &fallback, nil
	}

	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionSaveDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByIDWithOptions(id)
	if err != nil {
		return nil, fmt.Errorf("%w: ID %d", ErrQuestionNotFound, id)
	}
	if err := editor.Validate(draftFromSave(req)); err != nil {
		return nil, err
	}

	// Updates are full-field overwrites keyed by option id.
	optionByID := make(map[uint]int, len(question.Options))
	for i, option := range question.Options {
		optionByID[option.ID] = i
	}
	for _, payload := range req.Options {
		if payload.ID == nil {
			return nil, fmt.Errorf("option id is required when updating question %d", id)
		}
		i, ok := optionByID[*payload.ID]
		if !ok {
			return nil, fmt.Errorf("option %d does not belong to question %d", *payload.ID, id)
		}
		question.Options[i].Text = payload.Text
		question.Options[i].IsCorrect = payload.IsCorrect
	}

	question.Prompt = req.Prompt
	question.Concept = req.Concept
	question.Type = req.Type
	question.CorrectShortAnswers = req.CorrectShortAnswers
	if question.CorrectShortAnswers == nil {
		question.CorrectShortAnswers = []string{}
	}

	if err := s.questionRepo.UpdateWithOptions(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, fmt.Errorf("database error updating question: %w", err)
	}

	updated, err := s.questionRepo.FindByIDWithOptions(id)
	if err != nil {
		return nil, fmt.Errorf("error reloading question %d: %w", id, err)
	}
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, updated); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) (*dto.DeletedQuestionDTO, error) {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		return nil, fmt.Errorf("%w: ID %d", ErrQuestionNotFound, id)
	}
	if err := s.questionRepo.DeleteCascade(id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return nil, fmt.Errorf("database error deleting question: %w", err)
	}
	return &dto.DeletedQuestionDTO{ID: id}, nil
}
