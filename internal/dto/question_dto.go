package dto

import "time"

// OptionSaveDTO carries one option inside a question create/update payload.
// ID is required for updates (options are keyed by id) and absent on create.
type OptionSaveDTO struct {
	ID        *uint  `json:"id,omitempty"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionSaveDTO is the create/update payload for a question. Options and
// correct short answers are full-list overwrites.
type QuestionSaveDTO struct {
	Type                string          `json:"type" binding:"required,oneof=multiple_choice short_answer"`
	Prompt              string          `json:"prompt" binding:"required"`
	Concept             string          `json:"concept" binding:"required"`
	Options             []OptionSaveDTO `json:"options" binding:"omitempty,dive"`
	CorrectShortAnswers []string        `json:"correct_short_answers"`
}

type OptionResponseDTO struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionResponseDTO is the instructor view of a question, including which
// option is correct and the accepted short answers.
type QuestionResponseDTO struct {
	ID                  uint                `json:"id"`
	QuizID              uint                `json:"quiz_id"`
	Concept             string              `json:"concept"`
	Prompt              string              `json:"prompt"`
	Type                string              `json:"type"`
	OrderInQuiz         int                 `json:"order_in_quiz"`
	Options             []OptionResponseDTO `json:"options"`
	CorrectShortAnswers []string            `json:"correct_short_answers"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// DeletedQuestionDTO echoes the id of a deleted question.
type DeletedQuestionDTO struct {
	ID uint `json:"id"`
}
