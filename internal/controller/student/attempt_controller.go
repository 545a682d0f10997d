// Package student holds the authenticated student-facing endpoints.
package student

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

type AttemptController struct {
	attemptService service.AttemptService
	accountService service.AccountService
}

func NewAttemptController(attemptService service.AttemptService, accountService service.AccountService) *AttemptController {
	return &AttemptController{attemptService: attemptService, accountService: accountService}
}

// CurrentStudent godoc
// @Summary Get the calling student's profile
// @Description Resolved from the bearer token; an instructor token is rejected.
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentProfileDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Router /student/me [get]
func (c *AttemptController) CurrentStudent(ctx *gin.Context) {
	identity, _ := auth.FromContext(ctx)
	profile, err := c.accountService.CurrentStudent(identity)
	if err != nil {
		if errors.Is(err, auth.ErrNotStudent) {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// ListMyAttempts godoc
// @Summary List the calling student's quiz attempts
// @Description Newest first; optionally filtered to one course.
// @Tags Student - Attempts
// @Produce json
// @Security BearerAuth
// @Param course_id query int false "Optional course filter"
// @Success 200 {array} dto.QuizAttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Course ID format"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Router /student/quiz-attempts [get]
func (c *AttemptController) ListMyAttempts(ctx *gin.Context) {
	identity, _ := auth.FromContext(ctx)

	var courseID *uint
	if raw := ctx.Query("course_id"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Course ID format in query"})
			return
		}
		id := uint(value)
		courseID = &id
	}

	attempts, err := c.attemptService.ListMyAttempts(identity, courseID)
	if err != nil {
		if errors.Is(err, auth.ErrNotStudent) {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("ListMyAttempts: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve attempts", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetQuizAttempt godoc
// @Summary Get details of a quiz attempt
// @Description Returns the attempt only if the caller owns it or is an instructor. Missing and foreign attempts are indistinguishable.
// @Tags Student - Attempts
// @Produce json
// @Security BearerAuth
// @Param attempt_id path int true "Quiz Attempt ID"
// @Success 200 {object} dto.QuizAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Quiz attempt not found"
// @Router /quiz-attempts/{attempt_id} [get]
func (c *AttemptController) GetQuizAttempt(ctx *gin.Context) {
	identity, _ := auth.FromContext(ctx)

	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Attempt ID format"})
		return
	}

	attempt, err := c.attemptService.GetQuizAttempt(identity, uint(attemptID))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// SubmitQuizAttempt godoc
// @Summary Submit answers for an entire quiz
// @Description Grades the submission and stores the attempt with its per-question results.
// @Tags Student - Attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz_id path int true "Quiz ID"
// @Param submission body dto.QuizAttemptSubmitDTO true "Responses for the quiz's questions"
// @Success 201 {object} dto.QuizAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid submission"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a student"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /student/quizzes/{quiz_id}/attempts [post]
func (c *AttemptController) SubmitQuizAttempt(ctx *gin.Context) {
	identity, _ := auth.FromContext(ctx)

	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}

	var req dto.QuizAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuizAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	if len(req.Responses) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Submission must contain at least one response."})
		return
	}

	attempt, err := c.attemptService.SubmitQuizAttempt(identity, uint(quizID), req)
	if err != nil {
		if errors.Is(err, auth.ErrNotStudent) {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("SubmitQuizAttempt: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to submit quiz attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}
