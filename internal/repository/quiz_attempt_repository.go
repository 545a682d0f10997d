package repository

import (
	"github.com/quizpoint/quizpoint/internal/model"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	// OwnerID fetches only the owning student id, so callers can authorize
	// before loading the full payload.
	OwnerID(id uint) (uint, error)
	FindByIDWithDetails(id uint) (*model.QuizAttempt, error)
	FindAllByStudent(studentID uint, courseID *uint) ([]model.QuizAttempt, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	// GORM creates associated responses when attempt.Responses is populated.
	return r.db.Create(attempt).Error
}

func (r *quizAttemptRepository) OwnerID(id uint) (uint, error) {
	var attempt model.QuizAttempt
	err := r.db.Select("id", "student_id").First(&attempt, id).Error
	if err != nil {
		return 0, err
	}
	return attempt.StudentID, nil
}

func (r *quizAttemptRepository) FindByIDWithDetails(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.
		Preload("Quiz").
		Preload("Responses.Question.Options").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindAllByStudent(studentID uint, courseID *uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	query := r.db.Where("quiz_attempts.student_id = ?", studentID)
	if courseID != nil {
		query = query.
			Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
			Where("quizzes.course_id = ?", *courseID)
	}
	err := query.Order("quiz_attempts.submitted_at DESC").Find(&attempts).Error
	return attempts, err
}
