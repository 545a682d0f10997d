package repository

import (
	"github.com/quizpoint/quizpoint/internal/model"
	"gorm.io/gorm"
)

type OptionRepository interface {
	FindByID(id uint) (*model.Option, error)
}

type optionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) FindByID(id uint) (*model.Option, error) {
	var option model.Option
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}
