package service

import (
	"fmt"

	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// MembershipService handles the links between users and teams
type MembershipService struct {
	links *repository.MembershipRepository
	users *repository.UserRepository
	teams *repository.TeamRepository
}

// NewMembershipService creates a new membership service
func NewMembershipService(links *repository.MembershipRepository, users *repository.UserRepository, teams *repository.TeamRepository) *MembershipService {
	return &MembershipService{
		links: links,
		users: users,
		teams: teams,
	}
}

// AddUsersToTeam links every user to the team. If any user does not exist nothing is linked.
// Team existence is checked by the caller.
func (s *MembershipService) AddUsersToTeam(teamID int, userIDs []int) error {
	users, err := s.users.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	index := users.Index()
	for _, userID := range userIDs {
		if _, ok := index[userID]; !ok {
			return fmt.Errorf("%w: id %d", apperrors.ErrUserNotFound, userID)
		}
	}

	added, err := s.links.AddUsers(teamID, userIDs)
	if err != nil {
		return fmt.Errorf("failed to add users to team: %w", err)
	}

	logrus.WithFields(logrus.Fields{"team_id": teamID, "requested": len(userIDs), "added": added}).Info("users added to team")
	return nil
}

// RemoveUsersFromTeam unlinks the users from the team; users that are not linked are skipped
func (s *MembershipService) RemoveUsersFromTeam(teamID int, userIDs []int) error {
	removed, err := s.links.RemoveUsers(teamID, userIDs)
	if err != nil {
		return fmt.Errorf("failed to remove users from team: %w", err)
	}

	logrus.WithFields(logrus.Fields{"team_id": teamID, "requested": len(userIDs), "removed": removed}).Info("users removed from team")
	return nil
}

// ListUsersInTeam returns the linked users of a team in link order
func (s *MembershipService) ListUsersInTeam(teamID int) ([]UserSummary, error) {
	ids, err := s.links.GetUserIDsByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team links: %w", err)
	}
	users, err := s.users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	index := users.Index()
	summaries := make([]UserSummary, 0, len(ids))
	for _, id := range ids {
		if user, ok := index[id]; ok {
			summaries = append(summaries, toUserSummary(user))
		}
	}
	return summaries, nil
}

// GetTeamsOfUser returns the teams a user is linked to in link order
func (s *MembershipService) GetTeamsOfUser(userID int) ([]TeamResponse, error) {
	ids, err := s.links.GetTeamIDsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user links: %w", err)
	}
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	index := teams.Index()
	responses := make([]TeamResponse, 0, len(ids))
	for _, id := range ids {
		if team, ok := index[id]; ok {
			responses = append(responses, toTeamResponse(team))
		}
	}
	return responses, nil
}

// LinkExists reports whether the user is linked to the team
func (s *MembershipService) LinkExists(teamID, userID int) (bool, error) {
	exists, err := s.links.Exists(teamID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check team link: %w", err)
	}
	return exists, nil
}
