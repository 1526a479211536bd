package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rferraz/clientdesk/internal/domain"
	"github.com/rferraz/clientdesk/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, u *domain.User) error {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return domain.NewValidationError("username", "username is required")
	}
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if !domain.ValidRoles[string(u.Role)] {
		return domain.NewValidationError("role", fmt.Sprintf("unknown role %q", u.Role))
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	return s.users.Create(ctx, u)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// Update persists email and role changes. The username on u is ignored:
// renames go through Rename, which enforces the admin check.
func (s *userService) Update(ctx context.Context, u *domain.User) error {
	if !domain.ValidRoles[string(u.Role)] {
		return domain.NewValidationError("role", fmt.Sprintf("unknown role %q", u.Role))
	}
	current, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	u.Username = current.Username
	u.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, u)
}

func (s *userService) Rename(ctx context.Context, session domain.Session, userID, newUsername string) error {
	if !session.IsAdmin() {
		return &domain.AuthorizationError{Actor: session.Username, Required: domain.RoleAdmin}
	}
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return domain.NewValidationError("username", "username is required")
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	u.Username = newUsername
	u.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, u)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
