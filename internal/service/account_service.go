package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/quizpoint/quizpoint/internal/auth"
	"github.com/quizpoint/quizpoint/internal/dto"
	"github.com/quizpoint/quizpoint/internal/model"
	"github.com/quizpoint/quizpoint/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AccountService interface {
	SignUp(req dto.SignupRequest) (*dto.TokenResponse, error)
	LogIn(req dto.LoginRequest) (*dto.TokenResponse, error)
	// CurrentStudent resolves the caller's own student profile. An
	// instructor token fails with auth.ErrNotStudent.
	CurrentStudent(identity auth.Identity) (*dto.StudentProfileDTO, error)
	// CurrentInstructor resolves the caller's own instructor profile.
	CurrentInstructor(identity auth.Identity) (*dto.InstructorProfileDTO, error)
}

type accountService struct {
	studentRepo    repository.StudentRepository
	instructorRepo repository.InstructorRepository
	tokens         *auth.TokenService
	bcryptCost     int
}

func NewAccountService(
	studentRepo repository.StudentRepository,
	instructorRepo repository.InstructorRepository,
	tokens *auth.TokenService,
	bcryptCost int,
) AccountService {
	return &accountService{
		studentRepo:    studentRepo,
		instructorRepo: instructorRepo,
		tokens:         tokens,
		bcryptCost:     bcryptCost,
	}
}

func (s *accountService) SignUp(req dto.SignupRequest) (*dto.TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("error processing signup: %w", err)
	}

	var userID uint
	switch req.Role {
	case model.RoleStudent:
		if _, err := s.studentRepo.FindByEmail(req.Email); err == nil {
			return nil, ErrEmailTaken
		}
		student := model.Student{Name: req.Name, Email: req.Email, PasswordHash: string(hash)}
		if err := s.studentRepo.Create(&student); err != nil {
			log.Error().Err(err).Msg("Failed to create student")
			return nil, fmt.Errorf("database error creating student: %w", err)
		}
		userID = student.ID
	case model.RoleInstructor:
		if _, err := s.instructorRepo.FindByEmail(req.Email); err == nil {
			return nil, ErrEmailTaken
		}
		instructor := model.Instructor{Name: req.Name, Email: req.Email, PasswordHash: string(hash)}
		if err := s.instructorRepo.Create(&instructor); err != nil {
			log.Error().Err(err).Msg("Failed to create instructor")
			return nil, fmt.Errorf("database error creating instructor: %w", err)
		}
		userID = instructor.ID
	default:
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}

	token, err := s.tokens.Generate(userID, req.Role)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token after signup")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &dto.TokenResponse{Token: token, Role: req.Role}, nil
}

func (s *accountService) LogIn(req dto.LoginRequest) (*dto.TokenResponse, error) {
	var userID uint
	var passwordHash string

	switch req.Role {
	case model.RoleStudent:
		student, err := s.studentRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		userID, passwordHash = student.ID, student.PasswordHash
	case model.RoleInstructor:
		instructor, err := s.instructorRepo.FindByEmail(req.Email)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		userID, passwordHash = instructor.ID, instructor.PasswordHash
	default:
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(userID, req.Role)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate token on login")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &dto.TokenResponse{Token: token, Role: req.Role}, nil
}

func (s *accountService) CurrentStudent(identity auth.Identity) (*dto.StudentProfileDTO, error) {
	studentID, err := identity.AsStudent()
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.FindByID(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to load current student")
		return nil, fmt.Errorf("student not found: %w", err)
	}
	var resp dto.StudentProfileDTO
	if err := copier.Copy(&resp, student); err != nil {
		return nil, fmt.Errorf("error preparing student profile: %w", err)
	}
	return &resp, nil
}

func (s *accountService) CurrentInstructor(identity auth.Identity) (*dto.InstructorProfileDTO, error) {
	instructorID, err := identity.AsInstructor()
	if err != nil {
		return nil, err
	}
	instructor, err := s.instructorRepo.FindByID(instructorID)
	if err != nil {
		log.Error().Err(err).Uint("instructorID", instructorID).Msg("Failed to load current instructor")
		return nil, fmt.Errorf("instructor not found: %w", err)
	}
	var resp dto.InstructorProfileDTO
	if err := copier.Copy(&resp, instructor); err != nil {
		return nil, fmt.Errorf("error preparing instructor profile: %w", err)
	}
	return &resp, nil
}
