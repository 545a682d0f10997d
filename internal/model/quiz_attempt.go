package model

import (
	"time"

	"gorm.io/gorm"
)

type QuizAttempt struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	QuizID      uint               `json:"quiz_id" gorm:"not null;index"`
	Quiz        Quiz               `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	StudentID   uint               `json:"student_id" gorm:"not null;index"`
	SubmittedAt time.Time          `json:"submitted_at" gorm:"autoCreateTime"`
	Score       *float64           `json:"score,omitempty"`
	Completed   bool               `json:"completed" gorm:"not null;default:false"`
	Responses   []QuestionResponse `json:"responses,omitempty" gorm:"foreignKey:QuizAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`
}

// QuestionResponse records one student answer inside a quiz attempt.
type QuestionResponse struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuizAttemptID uint           `json:"quiz_attempt_id" gorm:"not null;index"`
	QuestionID    uint           `json:"question_id" gorm:"not null;index"`
	Question      Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	OptionID      *uint          `json:"option_id,omitempty"`
	ShortAnswer   string         `json:"short_answer,omitempty" gorm:"type:text"`
	IsCorrect     bool           `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
