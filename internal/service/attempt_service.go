package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/quizpoint/quizpoint/internal/auth"
	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/grading"
	"github.com/quizpoint/quizpoint/internal/model"
	"github.com/quizpoint/quizpoint/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrAttemptNotFound covers both a missing attempt and an attempt owned by
// another student. The two cases are deliberately indistinguishable so that
// probing ids reveals nothing about other students' activity.
var ErrAttemptNotFound = errors.New("quiz attempt not found")

type AttemptService interface {
	// GetQuizAttempt returns the attempt if the caller is the owning
	// student or any instructor; otherwise ErrAttemptNotFound.
	GetQuizAttempt(identity auth.Identity, attemptID uint) (*dto.QuizAttemptDetailDTO, error)
	// ListMyAttempts lists the calling student's attempts, newest first,
	// optionally filtered to one course.
	ListMyAttempts(identity auth.Identity, courseID *uint) ([]dto.QuizAttemptSummaryDTO, error)
	// SubmitQuizAttempt grades and stores a full quiz submission for the
	// calling student.
	SubmitQuizAttempt(identity auth.Identity, quizID uint, req dto.QuizAttemptSubmitDTO) (*dto.QuizAttemptDetailDTO, error)
}

type attemptService struct {
	attemptRepo repository.QuizAttemptRepository
	quizRepo    repository.QuizRepository
}

func NewAttemptService(attemptRepo repository.QuizAttemptRepository, quizRepo repository.QuizRepository) AttemptService {
	return &attemptService{attemptRepo: attemptRepo, quizRepo: quizRepo}
}

func (s *attemptService) GetQuizAttempt(identity auth.Identity, attemptID uint) (*dto.QuizAttemptDetailDTO, error) {
	// Authorize on the owner id alone before loading the full payload.
	ownerID, err := s.attemptRepo.OwnerID(attemptID)
	if err != nil {
		return nil, ErrAttemptNotFound
	}
	if !identity.IsInstructor() {
		studentID, err := identity.AsStudent()
		if err != nil || studentID != ownerID {
			return nil, ErrAttemptNotFound
		}
	}

	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Failed to load quiz attempt details")
		return nil, ErrAttemptNotFound
	}
	return attemptDetailDTO(attempt)
}

func (s *attemptService) ListMyAttempts(identity auth.Identity, courseID *uint) ([]dto.QuizAttemptSummaryDTO, error) {
	studentID, err := identity.AsStudent()
	if err != nil {
		return nil, err
	}
	attempts, err := s.attemptRepo.FindAllByStudent(studentID, courseID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to list student attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}
	var resp []dto.QuizAttemptSummaryDTO
	if err := copier.Copy(&resp, &attempts); err != nil {
		return nil, fmt.Errorf("error preparing attempts response: %w", err)
	}
	return resp, nil
}

func (s *attemptService) SubmitQuizAttempt(identity auth.Identity, quizID uint, req dto.QuizAttemptSubmitDTO) (*dto.QuizAttemptDetailDTO, error) {
	studentID, err := identity.AsStudent()
	if err != nil {
		return nil, err
	}

	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("SubmitQuizAttempt: quiz not found")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %d has no questions, submission is not possible", quizID)
	}
	questionByID := make(map[uint]*model.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		questionByID[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	attempt := model.QuizAttempt{
		QuizID:      quizID,
		StudentID:   studentID,
		SubmittedAt: time.Now(),
		Completed:   true,
	}

	correct := 0
	answered := make(map[uint]struct{}, len(req.Responses))
	for _, response := range req.Responses {
		question, exists := questionByID[response.QuestionID]
		if !exists {
			log.Warn().Uint("questionID", response.QuestionID).Uint("quizID", quizID).
				Msg("SubmitQuizAttempt: response for a question not part of this quiz, skipping")
			continue
		}
		// One response per question; repeats cannot inflate the score.
		if _, seen := answered[response.QuestionID]; seen {
			log.Warn().Uint("questionID", response.QuestionID).Uint("quizID", quizID).
				Msg("SubmitQuizAttempt: duplicate response for question, keeping the first")
			continue
		}
		answered[response.QuestionID] = struct{}{}
		isCorrect := grading.GradeResponse(question, response.OptionID, response.ShortAnswer)
		if isCorrect {
			correct++
		}
		attempt.Responses = append(attempt.Responses, model.QuestionResponse{
			QuestionID:  question.ID,
			OptionID:    response.OptionID,
			ShortAnswer: response.ShortAnswer,
			IsCorrect:   isCorrect,
		})
	}
	if len(attempt.Responses) == 0 {
		return nil, fmt.Errorf("no valid responses provided for the questions in quiz %d", quizID)
	}

	// Unanswered questions count against the score.
	score := grading.Score(correct, len(quiz.Questions))
	attempt.Score = &score

	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("Failed to create quiz attempt")
		return nil, fmt.Errorf("database error creating attempt: %w", err)
	}

	created, err := s.attemptRepo.FindByIDWithDetails(attempt.ID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Failed to reload attempt after creation")
		return attemptDetailDTO(&attempt)
	}
	return attemptDetailDTO(created)
}

func attemptDetailDTO(attempt *model.QuizAttempt) (*dto.QuizAttemptDetailDTO, error) {
	var resp dto.QuizAttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		return nil, fmt.Errorf("error preparing attempt response: %w", err)
	}
	resp.QuizTitle = attempt.Quiz.Title
	return &resp, nil
}
