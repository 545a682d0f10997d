// Package public holds the unauthenticated passthrough reads: quizzes,
// questions, options, courses and course concepts.
package public

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService    service.QuizService
	conceptService service.ConceptService
}

func NewQuizController(quizService service.QuizService, conceptService service.ConceptService) *QuizController {
	return &QuizController{quizService: quizService, conceptService: conceptService}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}

// GetAllQuizzes godoc
// @Summary List all quizzes
// @Description Get a list of quizzes with their question counts.
// @Tags Public - Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (c *QuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get details of a specific quiz
// @Description Get full details of a quiz, including its questions and options.
// @Tags Public - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Quiz ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *QuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	quiz, err := c.quizService.GetQuizDetails(quizID)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("GetQuizDetails: Quiz not found or service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// GetQuestion godoc
// @Summary Get a question by id
// @Tags Public - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id} [get]
func (c *QuizController) GetQuestion(ctx *gin.Context) {
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	question, err := c.quizService.GetQuestion(questionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// GetOption godoc
// @Summary Get an option by id
// @Tags Public - Questions
// @Produce json
// @Param option_id path int true "Option ID"
// @Success 200 {object} dto.OptionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Option ID format"
// @Failure 404 {object} dto.ErrorResponse "Option not found"
// @Router /options/{option_id} [get]
func (c *QuizController) GetOption(ctx *gin.Context) {
	optionID, ok := parseIDParam(ctx, "option_id")
	if !ok {
		return
	}
	option, err := c.quizService.GetOption(optionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, option)
}

// GetCourse godoc
// @Summary Get a course by id
// @Tags Public - Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id} [get]
func (c *QuizController) GetCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	course, err := c.quizService.GetCourse(courseID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// GetCourseConcepts godoc
// @Summary Get the distinct concepts used across a course
// @Description Walks every question of every quiz in the course and returns the distinct non-blank concepts.
// @Tags Public - Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.CourseConceptsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{course_id}/concepts [get]
func (c *QuizController) GetCourseConcepts(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "course_id")
	if !ok {
		return
	}
	concepts, err := c.conceptService.CourseConcepts(courseID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, concepts)
}
