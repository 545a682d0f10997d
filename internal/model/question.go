package model

import (
	"time"

	"gorm.io/gorm"
)

// Question types supported by the platform.
const (
	MultipleChoice = "multiple_choice"
	ShortAnswer    = "short_answer"
)

type Question struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	QuizID              uint           `json:"quiz_id" gorm:"not null;index"`
	Concept             string         `json:"concept" gorm:"not null"`
	Prompt              string         `json:"prompt" gorm:"type:text;not null"`
	Type                string         `json:"type" gorm:"not null"` // "multiple_choice", "short_answer"
	OrderInQuiz         int            `json:"order_in_quiz" gorm:"not null;default:0"`
	Options             []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CorrectShortAnswers []string       `json:"correct_short_answers" gorm:"serializer:json"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}
