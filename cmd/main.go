package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizpoint/quizpoint/config"
	"github.com/quizpoint/quizpoint/database"
	_ "github.com/quizpoint/quizpoint/docs" // Swagger docs - auto-generated
	"github.com/quizpoint/quizpoint/internal/auth"
	authctrl "github.com/quizpoint/quizpoint/internal/controller/auth"
	instructorctrl "github.com/quizpoint/quizpoint/internal/controller/instructor"
	publicctrl "github.com/quizpoint/quizpoint/internal/controller/public"
	studentctrl "github.com/quizpoint/quizpoint/internal/controller/student"
	"github.com/quizpoint/quizpoint/internal/logger"
	"github.com/quizpoint/quizpoint/internal/model"
	"github.com/quizpoint/quizpoint/internal/repository"
	"github.com/quizpoint/quizpoint/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizPoint API
// @version 1.0
// @description Education quiz platform: instructors author quizzes composed of multiple-choice and short-answer questions; students attempt quizzes and receive scored results.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			func(cfg *config.Config) *auth.TokenService {
				return auth.NewTokenService(cfg.Auth.JWTSecret)
			},
		),

		// Repositories Layer
		fx.Provide(
			repository.NewCourseRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewOptionRepository,
			repository.NewQuizAttemptRepository,
			repository.NewStudentRepository,
			repository.NewInstructorRepository,
		),

		// Services Layer
		fx.Provide(
			func(
				studentRepo repository.StudentRepository,
				instructorRepo repository.InstructorRepository,
				tokens *auth.TokenService,
				cfg *config.Config,
			) service.AccountService {
				return service.NewAccountService(studentRepo, instructorRepo, tokens, cfg.Auth.BcryptCost)
			},
			service.NewQuizService,
			service.NewConceptService,
			service.NewQuestionService,
			service.NewAttemptService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			publicctrl.NewQuizController,
			instructorctrl.NewQuestionController,
			studentctrl.NewAttemptController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin request logging through zerolog
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *auth.TokenService,
	authCtrl *authctrl.AuthController,
	quizCtrl *publicctrl.QuizController,
	questionCtrl *instructorctrl.QuestionController,
	attemptCtrl *studentctrl.AttemptController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)

		// Unauthenticated passthrough reads
		api.GET("/quizzes", quizCtrl.GetAllQuizzes)
		api.GET("/quizzes/:quiz_id", quizCtrl.GetQuizDetails)
		api.GET("/questions/:question_id", quizCtrl.GetQuestion)
		api.GET("/options/:option_id", quizCtrl.GetOption)
		api.GET("/courses/:course_id", quizCtrl.GetCourse)
		api.GET("/courses/:course_id/concepts", quizCtrl.GetCourseConcepts)

		// Attempt detail is visible to the owning student or any instructor
		api.GET("/quiz-attempts/:attempt_id", auth.RequireAuth(tokens), attemptCtrl.GetQuizAttempt)

		studentGroup := api.Group("/student", auth.RequireAuth(tokens))
		studentGroup.GET("/me", attemptCtrl.CurrentStudent)
		studentGroup.GET("/quiz-attempts", attemptCtrl.ListMyAttempts)
		studentGroup.POST("/quizzes/:quiz_id/attempts", attemptCtrl.SubmitQuizAttempt)

		instructorGroup := api.Group("/instructor", auth.RequireAuth(tokens), auth.RequireInstructor())
		instructorGroup.GET("/me", questionCtrl.CurrentInstructor)
		instructorGroup.POST("/courses", questionCtrl.CreateCourse)
		instructorGroup.POST("/courses/:course_id/quizzes", questionCtrl.CreateQuiz)
		instructorGroup.POST("/quizzes/:quiz_id/questions", questionCtrl.CreateQuestion)
		instructorGroup.PUT("/questions/:question_id", questionCtrl.UpdateQuestion)
		instructorGroup.DELETE("/questions/:question_id", questionCtrl.DeleteQuestion)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizPoint API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Course{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.Student{},
		&model.Instructor{},
		&model.QuizAttempt{},
		&model.QuestionResponse{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
