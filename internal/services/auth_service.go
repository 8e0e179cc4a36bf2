package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/constants"
	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
)

var (
	ErrNameRequired              = errors.New("name is required")
	ErrInvalidEmail              = errors.New("a valid email is required")
	ErrPasswordTooShort          = errors.New("password too short")
	ErrEmailTaken                = errors.New("email is already in use")
	ErrAdminRegistrationDisabled = errors.New("admin registration is disabled")
	ErrInvalidCredentials        = errors.New("invalid email or password")
	ErrUserNotFound              = errors.New("user not found")
	ErrFailedToHashPassword      = errors.New("failed to hash password")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration and credential verification.
type AuthService struct {
	userRepo   repository.UserRepository
	allowAdmin bool
}

// NewAuthService creates a new AuthService. allowAdmin controls whether the
// registration path may mint ADMIN identities.
func NewAuthService(userRepo repository.UserRepository, allowAdmin bool) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		allowAdmin: allowAdmin,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a new user. Requesting the ADMIN role is refused unless
// admin registration is enabled; any other requested role falls back to
// TEAM_MEMBER, so no third role value can ever be minted.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
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

	role := models.RoleTeamMember
	if input.Role == string(models.RoleAdmin) {
		if !s.allowAdmin {
			return nil, ErrAdminRegistrationDisabled
		}
		role = models.RoleAdmin
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(email)
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
