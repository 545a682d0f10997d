package dto

import "time"

// CourseSaveDTO is the create payload for a course.
type CourseSaveDTO struct {
	Title string `json:"title" binding:"required"`
}

// QuizSaveDTO is the create payload for a quiz within a course.
type QuizSaveDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// QuizSummaryDTO is used for listing quizzes.
type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	CourseID      uint      `json:"course_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizResponseDTO is used for displaying full quiz details.
type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	CourseID    uint                  `json:"course_id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

type CourseResponseDTO struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Quizzes   []QuizSummaryDTO `json:"quizzes,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// CourseConceptsDTO is the distinct set of concepts used across a course.
type CourseConceptsDTO struct {
	CourseID uint     `json:"course_id"`
	Concepts []string `json:"concepts"`
}
