package repository

import (
	"team-board-backend/internal/database/models"
	"team-board-backend/internal/storage"
)

// MembershipRepository handles storage operations for user/team links
type MembershipRepository struct {
	*Collection[models.Membership]
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(store storage.Store) *MembershipRepository {
	return &MembershipRepository{Collection: NewCollection[models.Membership](store, storage.CollectionMemberships)}
}

// GetAll retrieves every link in storage order
func (r *MembershipRepository) GetAll() (models.Memberships, error) {
	var links models.Memberships
	err := r.View(func(records []models.Membership) error {
		links = records
		return nil
	})
	return links, err
}

// AddUsers links each user to the team unless already linked, saving once.
// It returns the number of links created.
func (r *MembershipRepository) AddUsers(teamID int, userIDs []int) (int, error) {
	added := 0
	err := r.Update(func(records []models.Membership) ([]models.Membership, error) {
		links := models.Memberships(records)
		for _, userID := range userIDs {
			if links.Add(teamID, userID) {
				added++
			}
		}
		return links, nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

// RemoveUsers unlinks each user from the team, skipping pairs that are not linked, saving once.
// It returns the number of links removed.
func (r *MembershipRepository) RemoveUsers(teamID int, userIDs []int) (int, error) {
	removed := 0
	err := r.Update(func(records []models.Membership) ([]models.Membership, error) {
		links := models.Memberships(records)
		for _, userID := range userIDs {
			if links.Remove(teamID, userID) {
				removed++
			}
		}
		return links, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Exists reports whether the user is linked to the team
func (r *MembershipRepository) Exists(teamID, userID int) (bool, error) {
	var exists bool
	err := r.View(func(records []models.Membership) error {
		exists = models.Memberships(records).Exists(teamID, userID)
		return nil
	})
	return exists, err
}

// GetUserIDsByTeam retrieves the ids of the users linked to a team
func (r *MembershipRepository) GetUserIDsByTeam(teamID int) ([]int, error) {
	var ids []int
	err := r.View(func(records []models.Membership) error {
		ids = models.Memberships(records).UserIDsOfTeam(teamID)
		return nil
	})
	return ids, err
}

// GetTeamIDsByUser retrieves the ids of the teams a user is linked to
func (r *MembershipRepository) GetTeamIDsByUser(userID int) ([]int, error) {
	var ids []int
	err := r.View(func(records []models.Membership) error {
		ids = models.Memberships(records).TeamIDsOfUser(userID)
		return nil
	})
	return ids, err
}
