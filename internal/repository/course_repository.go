package repository

import (
	"github.com/quizpoint/quizpoint/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByIDWithQuizzes(id uint) (*model.Course, error)
	// FindByIDWithQuestions loads every quiz and every question of the
	// course, for concept aggregation.
	FindByIDWithQuestions(id uint) (*model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDWithQuizzes(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.Preload("Quizzes", func(db *gorm.DB) *gorm.DB {
		return db.Order("quizzes.created_at ASC")
	}).First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDWithQuestions(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.Preload("Quizzes.Questions").First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}
