package repository

import (
	"github.com/quizpoint/quizpoint/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	Create(student *model.Student) error
	FindByID(id uint) (*model.Student, error)
	FindByEmail(email string) (*model.Student, error)
}

type InstructorRepository interface {
	Create(instructor *model.Instructor) error
	FindByID(id uint) (*model.Instructor, error)
	FindByEmail(email string) (*model.Instructor, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(student *model.Student) error {
	return r.db.Create(student).Error
}

func (r *studentRepository) FindByID(id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindByEmail(email string) (*model.Student, error) {
	var student model.Student
	if err := r.db.Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

type instructorRepository struct {
	db *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) InstructorRepository {
	return &instructorRepository{db: db}
}

func (r *instructorRepository) Create(instructor *model.Instructor) error {
	return r.db.Create(instructor).Error
}

func (r *instructorRepository) FindByID(id uint) (*model.Instructor, error) {
	var instructor model.Instructor
	if err := r.db.First(&instructor, id).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *instructorRepository) FindByEmail(email string) (*model.Instructor, error) {
	var instructor model.Instructor
	if err := r.db.Where("email = ?", email).First(&instructor).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}
