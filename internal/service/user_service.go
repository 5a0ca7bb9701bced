package service

import (
	"context"
	"errors"
	"fmt"

	"praisy_backend/internal/model"
	"praisy_backend/internal/repository"
)

// ErrCannotDeleteAdmin is returned when the delete target holds the ADMIN
// role. Admin accounts are not deletable through the API by anyone.
var ErrCannotDeleteAdmin = errors.New("Cannot delete admin user")

// UserService provides admin user management
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteUser removes a user account. The target is read first so the admin
// protection applies before the row is touched.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find user for deletion: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Role == model.RoleAdmin {
		return ErrCannotDeleteAdmin
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		// The pre-check is racy; the row may have vanished underneath us
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user in repository: %w", err)
	}
	return nil
}
