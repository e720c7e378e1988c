package repository

import (
	"team-board-backend/internal/database/models"
	"team-board-backend/internal/storage"
)

// Repositories groups the repositories of every collection over one store
type Repositories struct {
	Users       *UserRepository
	Teams       *TeamRepository
	Memberships *MembershipRepository
	Boards      *BoardRepository
	Tasks       *TaskRepository
}

// New creates the repositories of every collection over store
func New(store storage.Store) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(store),
		Teams:       NewTeamRepository(store),
		Memberships: NewMembershipRepository(store),
		Boards:      NewBoardRepository(store),
		Tasks:       NewTaskRepository(store),
	}
}

// Snapshot holds every collection as read under one set of read locks
type Snapshot struct {
	Users       models.Users
	Teams       models.Teams
	Memberships models.Memberships
	Boards      models.Boards
	Tasks       models.Tasks
}

// Snapshot reads every collection while holding all their read locks, so no write
// lands between the reads.
func (r *Repositories) Snapshot() (*Snapshot, error) {
	snap := &Snapshot{}
	err := r.Users.View(func(users []models.User) error {
		return r.Teams.View(func(teams []models.Team) error {
			return r.Memberships.View(func(links []models.Membership) error {
				return r.Boards.View(func(boards []models.Board) error {
					return r.Tasks.View(func(tasks []models.Task) error {
						snap.Users = users
						snap.Teams = teams
						snap.Memberships = links
						snap.Boards = boards
						snap.Tasks = tasks
						return nil
					})
				})
			})
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
