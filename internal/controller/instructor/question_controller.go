// Package instructor holds the authenticated authoring surface.
package instructor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizpoint/quizpoint/internal/auth"
	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
	quizService     service.QuizService
	accountService  service.AccountService
}

func NewQuestionController(questionService service.QuestionService, quizService service.QuizService, accountService service.AccountService) *QuestionController {
	return &QuestionController{questionService: questionService, quizService: quizService, accountService: accountService}
}

// CurrentInstructor godoc
// @Summary Get the calling instructor's profile
// @Description Resolved from the bearer token, never from a client-supplied id.
// @Tags Instructor
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.InstructorProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not an instructor"
// @Router /instructor/me [get]
func (c *QuestionController) CurrentInstructor(ctx *gin.Context) {
	identity, _ := auth.FromContext(ctx)
	profile, err := c.accountService.CurrentInstructor(identity)
	if err != nil {
		if errors.Is(err, auth.ErrNotInstructor) {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags Instructor - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body dto.CourseSaveDTO true "Course payload"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /instructor/courses [post]
func (c *QuestionController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	course, err := c.quizService.CreateCourse(req)
	if err != nil {
		log.Error().Err(err).Msg("CreateCourse: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create course", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// CreateQuiz godoc
// @Summary Create a quiz in a course
// @Tags Instructor - Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course_id path int true "Course ID"
// @Param quiz body dto.QuizSaveDTO true "Quiz payload"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /instructor/courses/{course_id}/quizzes [post]
func (c *QuestionController) CreateQuiz(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("course_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Course ID format"})
		return
	}

	var req dto.QuizSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	quiz, err := c.quizService.CreateQuiz(uint(courseID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("courseID", courseID).Msg("CreateQuiz: Service error")
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Failed to create quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// CreateQuestion godoc
// @Summary Add a question to a quiz
// @Description Creates a question with its options and accepted short answers. The payload is validated with the same rules as the editor.
// @Tags Instructor - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param question body dto.QuestionSaveDTO true "Question payload (options carry text and correctness only)"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid or unsavable question"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /instructor/quizzes/{quiz_id}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	var req dto.QuestionSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(uint(quizID), req)
	if err != nil {
		log.Warn().Err(err).Uint64("quizID", quizID).Msg("CreateQuestion: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Full-field overwrite of the question; options are keyed by their existing ids.
// @Tags Instructor - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Param question body dto.QuestionSaveDTO true "Question payload (options keyed by id)"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid or unsavable question"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /instructor/questions/{question_id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}

	var req dto.QuestionSaveDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.UpdateQuestion(uint(questionID), req)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Warn().Err(err).Uint64("questionID", questionID).Msg("UpdateQuestion: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to update question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes the question, its options, and every student response referencing it.
// @Tags Instructor - Questions
// @Produce json
// @Security BearerAuth
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.DeletedQuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /instructor/questions/{question_id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	questionID, err := strconv.ParseUint(ctx.Param("question_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Question ID format"})
		return
	}

	deleted, err := c.questionService.DeleteQuestion(uint(questionID))
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("questionID", questionID).Msg("DeleteQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, deleted)
}
