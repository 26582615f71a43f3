package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hirebase/job-board-api/internal/constants"
	"github.com/hirebase/job-board-api/internal/models"
	"github.com/hirebase/job-board-api/internal/repository"
)

var (
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidEmail           = errors.New("invalid email format")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrPasswordTooShort       = errors.New("password too short")
	ErrMissingFields          = errors.New("missing required fields")
	ErrUserNotFound           = errors.New("user not found")
	ErrFailedToHashPassword   = errors.New("failed to hash password")
	ErrFailedToCreateUser     = errors.New("failed to create user")
	ErrFailedToCreateEmployer = errors.New("failed to create employer profile")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// NormalizeEmail trims and lowercases an email address. Every storage write
// and lookup goes through this, which is what makes emails case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterInput represents the required information to register an employer account.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	EmployerName string
	LogoPath     string
}

// Register creates a new user together with their employer profile. Both rows
// are written in one transaction so a failed employer insert cannot leave an
// orphaned user behind.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	employerName := strings.TrimSpace(input.EmployerName)
	email := NormalizeEmail(input.Email)

	if name == "" || email == "" || input.Password == "" || employerName == "" || input.LogoPath == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	employer := &models.Employer{
		Name:     employerName,
		LogoPath: input.LogoPath,
	}

	if err := s.userRepo.CreateWithEmployer(user, employer); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// Lost a race with a concurrent registration for the same email.
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrCreateUser):
			return nil, ErrFailedToCreateUser
		case errors.Is(err, repository.ErrCreateEmployer):
			return nil, ErrFailedToCreateEmployer
		default:
			return nil, fmt.Errorf("failed to complete registration: %w", err)
		}
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. Unknown
// email and wrong password produce the same error.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
