package dto

import "time"

// ResponseSubmitDTO is one answer within a quiz attempt submission. Exactly
// one of OptionID or ShortAnswer is expected, depending on the question type.
type ResponseSubmitDTO struct {
	QuestionID  uint   `json:"question_id" binding:"required"`
	OptionID    *uint  `json:"option_id"`
	ShortAnswer string `json:"short_answer"`
}

// QuizAttemptSubmitDTO is the request DTO for a student submitting all
// answers for a quiz.
type QuizAttemptSubmitDTO struct {
	Responses []ResponseSubmitDTO `json:"responses" binding:"required,dive"`
}

type ResponseDetailDTO struct {
	ID          uint                `json:"id"`
	QuestionID  uint                `json:"question_id"`
	Question    QuestionResponseDTO `json:"question,omitempty"`
	OptionID    *uint               `json:"option_id,omitempty"`
	ShortAnswer string              `json:"short_answer,omitempty"`
	IsCorrect   bool                `json:"is_correct"`
}

// QuizAttemptDetailDTO is for displaying the full details of an attempt.
type QuizAttemptDetailDTO struct {
	ID          uint                `json:"id"`
	QuizID      uint                `json:"quiz_id"`
	QuizTitle   string              `json:"quiz_title,omitempty"`
	StudentID   uint                `json:"student_id"`
	SubmittedAt time.Time           `json:"submitted_at"`
	Score       *float64            `json:"score,omitempty"`
	Completed   bool                `json:"completed"`
	Responses   []ResponseDetailDTO `json:"responses,omitempty"`
}

// QuizAttemptSummaryDTO is for listing a student's attempts.
type QuizAttemptSummaryDTO struct {
	ID          uint      `json:"id"`
	QuizID      uint      `json:"quiz_id"`
	StudentID   uint      `json:"student_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Score       *float64  `json:"score,omitempty"`
	Completed   bool      `json:"completed"`
}
