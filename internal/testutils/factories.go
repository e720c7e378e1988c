package testutils

import (
	"fmt"
	"time"

	"team-board-backend/internal/database/models"
)

// fixedCreationTime keeps factory output deterministic across runs
var fixedCreationTime = models.NewTimestamp(time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC))

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create(id int) models.User {
	return models.User{
		BaseModel: models.BaseModel{
			ID:           id,
			CreationTime: fixedCreationTime,
		},
		Name:        fmt.Sprintf("user%d", id),
		DisplayName: fmt.Sprintf("User %d", id),
		Description: "A test user for testing purposes",
	}
}

// WithName sets a custom name for the user
func (f *UserFactory) WithName(id int, name string) models.User {
	user := f.Create(id)
	user.Name = name
	user.DisplayName = name + " Display Name"
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team administered by adminID
func (f *TeamFactory) Create(id, adminID int) models.Team {
	return models.Team{
		BaseModel: models.BaseModel{
			ID:           id,
			CreationTime: fixedCreationTime,
		},
		Name:        fmt.Sprintf("team%d", id),
		Description: "A test team for testing purposes",
		Admin:       adminID,
		Users:       []int{},
	}
}

// BoardFactory provides methods to create test Board data
type BoardFactory struct{}

// NewBoardFactory creates a new BoardFactory
func NewBoardFactory() *BoardFactory {
	return &BoardFactory{}
}

// Create creates an open test Board owned by teamID
func (f *BoardFactory) Create(id, teamID int) models.Board {
	return models.Board{
		BaseModel: models.BaseModel{
			ID:           id,
			CreationTime: fixedCreationTime,
		},
		Name:        fmt.Sprintf("board%d", id),
		Description: "A test board for testing purposes",
		TeamID:      teamID,
		BoardStatus: models.BoardStatusOpen,
	}
}

// Closed creates a closed test Board owned by teamID
func (f *BoardFactory) Closed(id, teamID int) models.Board {
	board := f.Create(id, teamID)
	board.BoardStatus = models.BoardStatusClosed
	return board
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates an open test Task on boardID assigned to userID
func (f *TaskFactory) Create(id, boardID, userID int) models.Task {
	return models.Task{
		BaseModel: models.BaseModel{
			ID:           id,
			CreationTime: fixedCreationTime,
		},
		BoardID:     boardID,
		Title:       fmt.Sprintf("task%d", id),
		Description: "A test task for testing purposes",
		UserID:      userID,
		TaskStatus:  models.TaskStatusOpen,
	}
}

// WithStatus creates a test Task in the given status
func (f *TaskFactory) WithStatus(id, boardID, userID int, status models.TaskStatus) models.Task {
	task := f.Create(id, boardID, userID)
	task.TaskStatus = status
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	User  *UserFactory
	Team  *TeamFactory
	Board *BoardFactory
	Task  *TaskFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:  NewUserFactory(),
		Team:  NewTeamFactory(),
		Board: NewBoardFactory(),
		Task:  NewTaskFactory(),
	}
}
