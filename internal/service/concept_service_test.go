package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quizpoint/quizpoint/internal/model"
	"github.com/quizpoint/quizpoint/internal/repository"
)

func seedConceptCourse(t *testing.T, db *gorm.DB) *model.Course {
	t.Helper()
	course := model.Course{
		Title: "Math 101",
		Quizzes: []model.Quiz{
			{
				Title: "Week 1",
				Questions: []model.Question{
					{Concept: "Algebra", Prompt: "<p>q1</p>", Type: model.ShortAnswer, CorrectShortAnswers: []string{"x"}},
					{Concept: "   ", Prompt: "<p>q2</p>", Type: model.ShortAnswer, CorrectShortAnswers: []string{"x"}},
				},
			},
			{
				Title: "Week 2",
				Questions: []model.Question{
					{Concept: "algebra", Prompt: "<p>q3</p>", Type: model.ShortAnswer, CorrectShortAnswers: []string{"x"}},
					{Concept: " Algebra ", Prompt: "<p>q4</p>", Type: model.ShortAnswer, CorrectShortAnswers: []string{"x"}},
				},
			},
		},
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func TestCourseConceptsDistinctTrimmedCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	course := seedConceptCourse(t, db)

	svc := NewConceptService(repository.NewCourseRepository(db))
	result, err := svc.CourseConcepts(course.ID)
	require.NoError(t, err)

	assert.Equal(t, course.ID, result.CourseID)
	// "Algebra" and "algebra" are distinct; blanks and the trimmed
	// duplicate are dropped.
	assert.ElementsMatch(t, []string{"Algebra", "algebra"}, result.Concepts)
}

func TestCourseConceptsEmptyCourse(t *testing.T) {
	db := newTestDB(t)
	course := model.Course{Title: "Empty"}
	require.NoError(t, db.Create(&course).Error)

	svc := NewConceptService(repository.NewCourseRepository(db))
	result, err := svc.CourseConcepts(course.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Concepts)
	assert.NotNil(t, result.Concepts)
}

func TestCourseConceptsUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewConceptService(repository.NewCourseRepository(db))

	_, err := svc.CourseConcepts(999)
	assert.Error(t, err)
}
