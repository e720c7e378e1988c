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

// TeamService handles business logic for teams
type TeamService struct {
	repo        *repository.TeamRepository
	users       *repository.UserRepository
	memberships *MembershipService
	validator   *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo *repository.TeamRepository, users *repository.UserRepository, memberships *MembershipService, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:        repo,
		users:       users,
		memberships: memberships,
		validator:   validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=64" example:"core"`
	Description string `json:"description" validate:"max=128"`
	Admin       int    `json:"admin" validate:"required,gt=0" example:"1"`
}

// UpdateTeamRequest replaces the name, description and admin of a team
type UpdateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=64"`
	Description string `json:"description" validate:"max=128"`
	Admin       int    `json:"admin" validate:"required,gt=0"`
}

// TeamUsersRequest carries a batch of at most 50 user ids to link or unlink
type TeamUsersRequest struct {
	Users []int `json:"users" validate:"required,max=50,dive,gt=0"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	CreationTime string `json:"creation_time"`
	Admin        int    `json:"admin"`
}

// CreateTeam creates a new team administered by an existing user
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.checkAdmin(req.Admin); err != nil {
		return nil, err
	}

	team := &models.Team{
		BaseModel:   models.BaseModel{CreationTime: models.NewTimestamp(time.Now().UTC())},
		Name:        req.Name,
		Description: req.Description,
		Admin:       req.Admin,
		Users:       []int{},
	}
	if err := s.repo.Create(team); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logrus.WithFields(logrus.Fields{"team_id": team.ID, "name": team.Name, "admin": team.Admin}).Info("team created")
	response := toTeamResponse(team)
	return &response, nil
}

// ListTeams returns every team in storage order
func (s *TeamService) ListTeams() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = toTeamResponse(&teams[i])
	}
	return responses, nil
}

// DescribeTeam returns a single team
func (s *TeamService) DescribeTeam(id int) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrTeamNotFound, id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	response := toTeamResponse(team)
	return &response, nil
}

// UpdateTeam overwrites name, description and admin of a team
func (s *TeamService) UpdateTeam(id int, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.checkAdmin(req.Admin); err != nil {
		return nil, err
	}

	team := &models.Team{
		BaseModel:   models.BaseModel{ID: id},
		Name:        req.Name,
		Description: req.Description,
		Admin:       req.Admin,
	}
	if err := s.repo.Replace(team); err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrTeamNotFound, id)
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	logrus.WithField("team_id", id).Info("team updated")
	response := toTeamResponse(team)
	return &response, nil
}

// AddUsersToTeam links a batch of existing users to an existing team
func (s *TeamService) AddUsersToTeam(teamID int, req *TeamUsersRequest) error {
	if err := s.checkBatch(teamID, req); err != nil {
		return err
	}
	return s.memberships.AddUsersToTeam(teamID, req.Users)
}

// RemoveUsersFromTeam unlinks a batch of users from an existing team
func (s *TeamService) RemoveUsersFromTeam(teamID int, req *TeamUsersRequest) error {
	if err := s.checkBatch(teamID, req); err != nil {
		return err
	}
	return s.memberships.RemoveUsersFromTeam(teamID, req.Users)
}

// ListTeamUsers returns the users linked to an existing team
func (s *TeamService) ListTeamUsers(teamID int) ([]UserSummary, error) {
	if err := s.checkTeam(teamID); err != nil {
		return nil, err
	}
	return s.memberships.ListUsersInTeam(teamID)
}

func (s *TeamService) checkBatch(teamID int, req *TeamUsersRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}
	return s.checkTeam(teamID)
}

func (s *TeamService) checkTeam(teamID int) error {
	exists, err := s.repo.Exists(teamID)
	if err != nil {
		return fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id %d", apperrors.ErrTeamNotFound, teamID)
	}
	return nil
}

func (s *TeamService) checkAdmin(adminID int) error {
	if _, err := s.users.GetByID(adminID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", apperrors.ErrAdminNotFound, adminID)
		}
		return fmt.Errorf("failed to verify admin: %w", err)
	}
	return nil
}

func toTeamResponse(team *models.Team) TeamResponse {
	return TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		Description:  team.Description,
		CreationTime: formatTime(team.CreationTime.Time),
		Admin:        team.Admin,
	}
}
