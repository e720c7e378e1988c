package service_test

import (
	"path/filepath"

	"team-board-backend/internal/config"
	"team-board-backend/internal/repository"
	"team-board-backend/internal/service"
	"team-board-backend/internal/storage"

	"github.com/stretchr/testify/suite"
)

// ServiceTestSuite wires every service over a fresh in-memory store for each test
type ServiceTestSuite struct {
	suite.Suite
	store    *storage.MemoryStore
	repos    *repository.Repositories
	cfg      *config.Config
	services *service.Services
}

// SetupTest runs before each test
func (suite *ServiceTestSuite) SetupTest() {
	suite.store = storage.NewMemoryStore()
	suite.repos = repository.New(suite.store)
	suite.cfg = &config.Config{
		StorageBackend:              config.StorageMemory,
		ExportDir:                   filepath.Join(suite.T().TempDir(), "output"),
		ExportFile:                  "output.txt",
		ExportFormat:                "text",
		AllowClosedBoardTaskUpdates: true,
	}
	suite.rewire()
}

// rewire rebuilds the services after a configuration change
func (suite *ServiceTestSuite) rewire() {
	services, err := service.New(suite.repos, suite.cfg)
	suite.Require().NoError(err)
	suite.services = services
}

func (suite *ServiceTestSuite) createUser(name string) int {
	user, err := suite.services.Users.CreateUser(&service.CreateUserRequest{Name: name, DisplayName: name + " display", Description: "d"})
	suite.Require().NoError(err)
	return user.ID
}

func (suite *ServiceTestSuite) createTeam(name string, admin int) int {
	team, err := suite.services.Teams.CreateTeam(&service.CreateTeamRequest{Name: name, Description: "d", Admin: admin})
	suite.Require().NoError(err)
	return team.ID
}

func (suite *ServiceTestSuite) addMembers(teamID int, userIDs ...int) {
	suite.Require().NoError(suite.services.Teams.AddUsersToTeam(teamID, &service.TeamUsersRequest{Users: userIDs}))
}

func (suite *ServiceTestSuite) createBoard(name string, teamID int) int {
	board, err := suite.services.Boards.CreateBoard(&service.CreateBoardRequest{Name: name, Description: "d", TeamID: teamID})
	suite.Require().NoError(err)
	return board.ID
}

func (suite *ServiceTestSuite) addTask(boardID int, title string, userID int) int {
	task, err := suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: boardID, Title: title, Description: "d", UserID: userID})
	suite.Require().NoError(err)
	return task.ID
}

func (suite *ServiceTestSuite) countStored(collection string) int {
	var records []map[string]interface{}
	suite.Require().NoError(suite.store.Load(collection, &records))
	return len(records)
}

// teamWithMember creates a user, a team it administers and belongs to, and returns both ids
func (suite *ServiceTestSuite) teamWithMember(userName, teamName string) (userID, teamID int) {
	userID = suite.createUser(userName)
	teamID = suite.createTeam(teamName, userID)
	suite.addMembers(teamID, userID)
	return userID, teamID
}

func strPtr(s string) *string {
	return &s
}
