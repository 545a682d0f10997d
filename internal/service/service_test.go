package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quizpoint/quizpoint/internal/auth"
	"github.com/quizpoint/quizpoint/internal/model"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Course{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.Student{},
		&model.Instructor{},
		&model.QuizAttempt{},
		&model.QuestionResponse{},
	))
	return db
}

// seedQuiz creates a course holding one quiz with a multiple-choice and a
// short-answer question. Ids on the returned quiz are populated.
func seedQuiz(t *testing.T, db *gorm.DB) *model.Quiz {
	t.Helper()
	course := model.Course{Title: "Intro Biology"}
	require.NoError(t, db.Create(&course).Error)

	quiz := model.Quiz{
		CourseID: course.ID,
		Title:    "Cells",
		Questions: []model.Question{
			{
				Concept:     "Organelles",
				Prompt:      "<p>Which organelle produces ATP?</p>",
				Type:        model.MultipleChoice,
				OrderInQuiz: 1,
				Options: []model.Option{
					{Text: "Nucleus"},
					{Text: "Mitochondria", IsCorrect: true},
				},
				CorrectShortAnswers: []string{},
			},
			{
				Concept:             "Organelles",
				Prompt:              "<p>Name the powerhouse of the cell.</p>",
				Type:                model.ShortAnswer,
				OrderInQuiz:         2,
				CorrectShortAnswers: []string{"mitochondria"},
			},
		},
	}
	require.NoError(t, db.Create(&quiz).Error)
	return &quiz
}

func seedStudent(t *testing.T, db *gorm.DB, email string) *model.Student {
	t.Helper()
	student := model.Student{Name: "Test Student", Email: email, PasswordHash: "unused"}
	require.NoError(t, db.Create(&student).Error)
	return &student
}

func studentIdentity(id uint) auth.Identity {
	return auth.Identity{UserID: id, Role: auth.RoleStudent}
}

func instructorIdentity(id uint) auth.Identity {
	return auth.Identity{UserID: id, Role: auth.RoleInstructor}
}

func uintPtr(v uint) *uint { return &v }
