package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/model"
	"github.com/quizpoint/quizpoint/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService serves the unauthenticated passthrough reads (quizzes,
// questions, options, courses) and the instructor-side course/quiz creation.
type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error)
	GetCourse(courseID uint) (*dto.CourseResponseDTO, error)
	GetQuestion(questionID uint) (*dto.QuestionResponseDTO, error)
	GetOption(optionID uint) (*dto.OptionResponseDTO, error)
	CreateCourse(req dto.CourseSaveDTO) (*dto.CourseResponseDTO, error)
	CreateQuiz(courseID uint, req dto.QuizSaveDTO) (*dto.QuizResponseDTO, error)
}

type quizService struct {
	quizRepo     repository.QuizRepository
	courseRepo   repository.CourseRepository
	questionRepo repository.QuestionRepository
	optionRepo   repository.OptionRepository
}

func NewQuizService(
	quizRepo repository.QuizRepository,
	courseRepo repository.CourseRepository,
	questionRepo repository.QuestionRepository,
	optionRepo repository.OptionRepository,
) QuizService {
	return &quizService{
		quizRepo:     quizRepo,
		courseRepo:   courseRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
	}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzesWithCount, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes with question count")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	var dtos []dto.QuizSummaryDTO
	for _, qwc := range quizzesWithCount {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:            qwc.Quiz.ID,
			CourseID:      qwc.Quiz.CourseID,
			Title:         qwc.Quiz.Title,
			Description:   qwc.Quiz.Description,
			QuestionCount: qwc.QuestionCount,
			CreatedAt:     qwc.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Failed to get quiz details")
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizResponseDTO")
		return nil, fmt.Errorf("error preparing quiz details response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) GetCourse(courseID uint) (*dto.CourseResponseDTO, error) {
	course, err := s.courseRepo.FindByIDWithQuizzes(courseID)
	if err != nil {
		log.Warn().Err(err).Uint("courseID", courseID).Msg("Failed to get course")
		return nil, fmt.Errorf("course not found with ID %d: %w", courseID, err)
	}
	var resp dto.CourseResponseDTO
	if err := copier.Copy(&resp, course); err != nil {
		return nil, fmt.Errorf("error preparing course response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) CreateCourse(req dto.CourseSaveDTO) (*dto.CourseResponseDTO, error) {
	course := model.Course{Title: req.Title}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Msg("Failed to create course")
		return nil, fmt.Errorf("database error creating course: %w", err)
	}
	var resp dto.CourseResponseDTO
	if err := copier.Copy(&resp, &course); err != nil {
		return nil, fmt.Errorf("error preparing course response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) CreateQuiz(courseID uint, req dto.QuizSaveDTO) (*dto.QuizResponseDTO, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		log.Warn().Err(err).Uint("courseID", courseID).Msg("Invalid course for quiz creation")
		return nil, fmt.Errorf("course not found with ID %d: %w", courseID, err)
	}
	quiz := model.Quiz{CourseID: courseID, Title: req.Title, Description: req.Description}
	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("Failed to create quiz")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}
	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, &quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) GetQuestion(questionID uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByIDWithOptions(questionID)
	if err != nil {
		return nil, fmt.Errorf("question not found with ID %d: %w", questionID, err)
	}
	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) GetOption(optionID uint) (*dto.OptionResponseDTO, error) {
	option, err := s.optionRepo.FindByID(optionID)
	if err != nil {
		return nil, fmt.Errorf("option not found with ID %d: %w", optionID, err)
	}
	var resp dto.OptionResponseDTO
	if err := copier.Copy(&resp, option); err != nil {
		return nil, fmt.Errorf("error preparing option response: %w", err)
	}
	return &resp, nil
}
