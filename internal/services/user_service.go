package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/constants"
	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/policy"
	"github.com/taskboard/taskboard-api/internal/repository"
)

// UserService handles administrator-driven user management.
type UserService struct {
	userRepo repository.UserRepository
	pol      *policy.Policy
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, pol *policy.Policy) *UserService {
	return &UserService{
		userRepo: userRepo,
		pol:      pol,
	}
}

// ListUsers returns every user, newest first.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUserInput represents input for creating a team member.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// CreateUser creates a team member. This path never mints administrators;
// the only way to obtain an ADMIN identity is the gated registration path.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
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

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constants.BcryptCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleTeamMember,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// DeleteUser deletes a user after the self-protection check.
func (s *UserService) DeleteUser(actor *models.User, targetID uint64) error {
	if err := s.pol.CanDeleteUser(actor, targetID); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
