package service

import (
	"errors"
	"fmt"
	"time"

	"team-board-backend/internal/database/models"
	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// UserService handles business logic for users
type UserService struct {
	repo        *repository.UserRepository
	memberships *MembershipService
	validator   *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo *repository.UserRepository, memberships *MembershipService, validator *validator.Validate) *UserService {
	return &UserService{
		repo:        repo,
		memberships: memberships,
		validator:   validator,
	}
}

// CreateUserRequest represents the request to create a user
type CreateUserRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=64" example:"alice"`
	DisplayName string `json:"display_name" validate:"max=128" example:"Alice"`
	Description string `json:"description" validate:"max=256"`
}

// UpdateUserRequest represents a partial update of a user. The name cannot change;
// Name only exists so that a request carrying it is rejected instead of ignored.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty" swaggerignore:"true"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=256"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
}

// UserSummary is the short form of a user used in listings
type UserSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// CreateUser creates a new user
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	user := &models.User{
		BaseModel:   models.BaseModel{CreationTime: models.NewTimestamp(time.Now().UTC())},
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "name": user.Name}).Info("user created")
	return s.toResponse(user), nil
}

// ListUsers returns every user in storage order
func (s *UserService) ListUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.toResponse(&users[i])
	}
	return responses, nil
}

// DescribeUser returns a single user
func (s *UserService) DescribeUser(id int) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// UpdateUser applies the fields present in req and leaves the others untouched
func (s *UserService) UpdateUser(id int, req *UpdateUserRequest) (*UserResponse, error) {
	if req.Name != nil {
		return nil, apperrors.NewValidationError("name", "cannot be changed")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var updated models.User
	err := s.repo.Modify(id, func(user *models.User) error {
		if req.DisplayName != nil {
			user.DisplayName = *req.DisplayName
		}
		if req.Description != nil {
			user.Description = *req.Description
		}
		updated = *user
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrUserNotFound, id)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logrus.WithField("user_id", id).Info("user updated")
	return s.toResponse(&updated), nil
}

// GetUserTeams returns the teams a user is linked to. Unknown users are reported as not found.
func (s *UserService) GetUserTeams(id int) ([]TeamResponse, error) {
	if _, err := s.DescribeUser(id); err != nil {
		return nil, err
	}
	return s.memberships.GetTeamsOfUser(id)
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		DisplayName:  user.DisplayName,
		Description:  user.Description,
		CreationTime: formatTime(user.CreationTime.Time),
	}
}

func toUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:          user.ID,
		Name:        user.Name,
		DisplayName: user.DisplayName,
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
