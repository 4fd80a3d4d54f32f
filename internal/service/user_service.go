package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uint) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uint, input dto.UpdateUserInput) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
	UpdateUserRole(ctx context.Context, id uint, roleName string) error
	GetRoles(ctx context.Context) ([]*model.Role, error)
}

type userService struct {
	repo        repository.UserRepository
	defaultRole string
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo, defaultRole: model.RoleStudent}
}

func (s *userService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperror.ValidationField("email", "email is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("create user", err)
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, apperror.ValidationField("username", "username is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Database("create user", err)
	}

	roleName := s.defaultRole
	if input.Role != nil && *input.Role != "" {
		roleName = *input.Role
	}

	role, err := s.repo.FindRoleByName(ctx, roleName)
	if err != nil {
		return nil, found("role "+roleName, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roleID := role.ID
	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BirthDate:    input.BirthDate,
		RoleID:       &roleID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.Database("create user", err)
	}

	user.Role = *role
	resp := UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("user", err)
	}

	resp := UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Database("list users", err)
	}
	if len(users) == 0 {
		return nil, apperror.EmptyList("users")
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, UserToResponse(user))
	}

	return responses, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, input dto.UpdateUserInput) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, found("user", err)
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *input.Email); err == nil {
			return nil, apperror.ValidationField("email", "email is already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Database("update user", err)
		}
		user.Email = *input.Email
	}

	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperror.Database("update user", err)
	}

	resp := UserToResponse(user)
	return &resp, nil
}

// DeleteUser removes the account and, depending on the assigned role, the
// Student or Teacher profile that hangs off it.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return found("user", err)
	}

	if err := s.repo.DeleteWithProfile(ctx, user); err != nil {
		return apperror.Database("delete user", err)
	}

	return nil
}

// UpdateUserRole replaces the user's role; it never accumulates roles.
func (s *userService) UpdateUserRole(ctx context.Context, id uint, roleName string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return found("user", err)
	}

	role, err := s.repo.FindRoleByName(ctx, roleName)
	if err != nil {
		return found("role "+roleName, err)
	}

	if err := s.repo.SetRole(ctx, user.ID, role.ID); err != nil {
		return apperror.Database("update user role", err)
	}

	return nil
}

func (s *userService) GetRoles(ctx context.Context) ([]*model.Role, error) {
	roles, err := s.repo.FindAllRoles(ctx)
	if err != nil {
		return nil, apperror.Database("list roles", err)
	}
	if len(roles) == 0 {
		return nil, apperror.EmptyList("roles")
	}

	return roles, nil
}
