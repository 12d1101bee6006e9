package service

import (
	"alcyxob/wodbook/internal/domain"
	"alcyxob/wodbook/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is returned when no account matches. It wraps repository.ErrNotFound.
var ErrUserNotFound = fmt.Errorf("user %w", repository.ErrNotFound)

// UserService reads and updates athlete accounts.
type UserService interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, userError(err)
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, userError(err)
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateUser writes the profile fields of user and returns the stored account.
func (s *userService) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil || user.ID.IsZero() {
		return nil, errors.New("user ID is required to update a user")
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, userError(err)
	}
	return s.GetByID(ctx, user.ID)
}

func userError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
