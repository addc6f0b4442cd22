package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finsight/internal/models"
	"finsight/internal/repositories"
)

var (
	ErrUserExists   = errors.New("username or email already taken")
	ErrWeakPassword = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

type userService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface) UserServiceInterface {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) CreateUser(username, email, password string) (*models.User, error) {
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	user := &models.User{
		Username: username,
		Email:    email,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	slog.Info("user created",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

func (s *userService) GetUser(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers() ([]models.User, error) {
	return s.userRepo.List()
}
