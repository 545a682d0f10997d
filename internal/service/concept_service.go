package service

import (
	"fmt"
	"strings"

	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/repository"
	"github.com/rs/zerolog/log"
)

// ConceptService derives the distinct set of concepts used across a course
// by walking every question of every quiz.
type ConceptService interface {
	CourseConcepts(courseID uint) (*dto.CourseConceptsDTO, error)
}

type conceptService struct {
	courseRepo repository.CourseRepository
}

func NewConceptService(courseRepo repository.CourseRepository) ConceptService {
	return &conceptService{courseRepo: courseRepo}
}

func (s *conceptService) CourseConcepts(courseID uint) (*dto.CourseConceptsDTO, error) {
	course, err := s.courseRepo.FindByIDWithQuestions(courseID)
	if err != nil {
		log.Warn().Err(err).Uint("courseID", courseID).Msg("Failed to load course for concept aggregation")
		return nil, fmt.Errorf("course not found with ID %d: %w", courseID, err)
	}

	// Concepts are compared trimmed but case-sensitive; blanks are dropped.
	seen := make(map[string]struct{})
	concepts := []string{}
	for _, quiz := range course.Quizzes {
		for _, question := range quiz.Questions {
			concept := strings.TrimSpace(question.Concept)
			if concept == "" {
				continue
			}
			if _, ok := seen[concept]; ok {
				continue
			}
			seen[concept] = struct{}{}
			concepts = append(concepts, concept)
		}
	}

	return &dto.CourseConceptsDTO{CourseID: courseID, Concepts: concepts}, nil
}
