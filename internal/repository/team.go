package repository

import (
	"errors"

	"team-board-backend/internal/database/models"
	"team-board-backend/internal/storage"
)

// TeamRepository handles storage operations for teams
type TeamRepository struct {
	*Collection[models.Team]
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(store storage.Store) *TeamRepository {
	return &TeamRepository{Collection: NewCollection[models.Team](store, storage.CollectionTeams)}
}

// Create assigns the next id to team and appends it. Names are unique.
func (r *TeamRepository) Create(team *models.Team) error {
	return r.Update(func(records []models.Team) ([]models.Team, error) {
		teams := models.Teams(records)
		if teams.NameTaken(team.Name, 0) {
			return nil, ErrDuplicateKey
		}
		team.ID = teams.NextID()
		if team.Users == nil {
			team.Users = []int{}
		}
		return append(records, *team), nil
	})
}

// GetAll retrieves every team in storage order
func (r *TeamRepository) GetAll() (models.Teams, error) {
	var teams models.Teams
	err := r.View(func(records []models.Team) error {
		teams = records
		return nil
	})
	return teams, err
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id int) (*models.Team, error) {
	var team *models.Team
	err := r.View(func(records []models.Team) error {
		team = models.Teams(records).FindByID(id)
		if team == nil {
			return ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// Exists reports whether a team with the given id is stored
func (r *TeamRepository) Exists(id int) (bool, error) {
	_, err := r.GetByID(id)
	if errors.Is(err, ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Replace overwrites the name, description and admin of the stored team with the same id.
// The name must not be used by any other team.
func (r *TeamRepository) Replace(team *models.Team) error {
	return r.Update(func(records []models.Team) ([]models.Team, error) {
		teams := models.Teams(records)
		stored := teams.FindByID(team.ID)
		if stored == nil {
			return nil, ErrRecordNotFound
		}
		if teams.NameTaken(team.Name, team.ID) {
			return nil, ErrDuplicateKey
		}
		stored.Name = team.Name
		stored.Description = team.Description
		stored.Admin = team.Admin
		*team = *stored
		return records, nil
	})
}
