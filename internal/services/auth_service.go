package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-board/internal/constants"
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrLoginIDRequired      = errors.New("login id is required")
	ErrLoginIDTaken         = errors.New("login id already exists")
	ErrInvalidCredentials   = errors.New("invalid login id or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents the information needed to provision a user.
type CreateUserInput struct {
	LoginID  string
	UserName string
	Password string
	Admin    bool
}

// CreateUser provisions a new user account.
func (s *AuthService) CreateUser(input CreateUserInput) (*models.User, error) {
	loginID := strings.TrimSpace(input.LoginID)
	if loginID == "" {
		return nil, ErrLoginIDRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByLoginID(loginID); err == nil {
		return nil, ErrLoginIDTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check login id: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		userName = loginID
	}

	role := models.UserRoleMember
	if input.Admin {
		role = models.UserRoleSystemAdmin
	}

	user := &models.User{
		LoginID:      loginID,
		UserName:     userName,
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
	LoginID  string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByLoginID(input.LoginID)
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

// GetUser retrieves a user by login id.
func (s *AuthService) GetUser(loginID string) (*models.User, error) {
	user, err := s.userRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
