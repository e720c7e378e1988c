package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"team-board-backend/internal/config"
	"team-board-backend/internal/repository"
	"team-board-backend/internal/service"
	"team-board-backend/internal/storage"

	"github.com/stretchr/testify/suite"
)

// Files as written by earlier tooling: naive space-separated stamps, with and without microseconds
const (
	legacyUsers = `[{"id": 1, "name": "alice", "display_name": "Alice", "description": "lead", "creation_time": "2024-05-02 10:00:00"}, {"id": 2, "name": "bob", "display_name": "Bob", "description": "", "creation_time": "2024-05-02 10:05:00.123456"}]
`
	legacyTeams = `[{"id": 1, "name": "core", "description": "platform", "admin": 1, "users": [1, 2], "creation_time": "2024-05-02 11:00:00.654321"}]
`
	legacyMemberships = `[{"user_id": 1, "team_id": 1}, {"user_id": 2, "team_id": 1}]
`
	legacyBoards = `[{"id": 1, "name": "Sprint1", "description": "first", "team_id": 1, "board_status": "Open", "creation_time": "2024-05-03 09:00:00"}]
`
	legacyTasks = `[{"id": 1, "board_id": 1, "title": "Fix bug", "description": "", "user_id": 2, "task_status": "Open", "creation_time": "2024-05-03T09:30:00.000001"}]
`
)

// LegacyDataTestSuite runs the services over a file store seeded with legacy data files
type LegacyDataTestSuite struct {
	suite.Suite
	dataDir  string
	cfg      *config.Config
	services *service.Services
}

// SetupTest writes the legacy files and wires the services to them
func (suite *LegacyDataTestSuite) SetupTest() {
	suite.dataDir = suite.T().TempDir()
	files := map[string]string{
		"users.json":             legacyUsers,
		"team.json":              legacyTeams,
		"user_team_linking.json": legacyMemberships,
		"board.json":             legacyBoards,
		"task.json":              legacyTasks,
	}
	for name, content := range files {
		suite.Require().NoError(os.WriteFile(filepath.Join(suite.dataDir, name), []byte(content), 0o644))
	}

	store, err := storage.NewFileStore(suite.dataDir)
	suite.Require().NoError(err)
	suite.cfg = &config.Config{
		StorageBackend: config.StorageFile,
		DataDir:        suite.dataDir,
		ExportDir:      filepath.Join(suite.T().TempDir(), "output"),
		ExportFile:     "output.txt",
		ExportFormat:   "text",
	}
	services, err := service.New(repository.New(store), suite.cfg)
	suite.Require().NoError(err)
	suite.services = services
}

func (suite *LegacyDataTestSuite) TestListUsers() {
	users, err := suite.services.Users.ListUsers()
	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal("alice", users[0].Name)
	suite.Contains(users[0].CreationTime, "2024-05-02T10:00:00")
}

func (suite *LegacyDataTestSuite) TestCreateUserAlongsideLegacyRecords() {
	user, err := suite.services.Users.CreateUser(&service.CreateUserRequest{Name: "carol"})
	suite.Require().NoError(err)
	suite.Equal(3, user.ID)

	users, err := suite.services.Users.ListUsers()
	suite.Require().NoError(err)
	suite.Len(users, 3)
	suite.Contains(users[1].CreationTime, "2024-05-02T10:05:00")
}

func (suite *LegacyDataTestSuite) TestDescribeTeam() {
	team, err := suite.services.Teams.DescribeTeam(1)
	suite.Require().NoError(err)
	suite.Equal("core", team.Name)
	suite.Contains(team.CreationTime, "2024-05-02T11:00:00")
}

func (suite *LegacyDataTestSuite) TestBoardAndTask() {
	board, err := suite.services.Boards.GetBoard(1)
	suite.Require().NoError(err)
	suite.Equal("Sprint1", board.Name)

	task, err := suite.services.Boards.GetTask(1)
	suite.Require().NoError(err)
	suite.Equal("Fix bug", task.Title)

	tasks, err := suite.services.Boards.ListTasksInBoard(1)
	suite.Require().NoError(err)
	suite.Len(tasks, 1)
}

func (suite *LegacyDataTestSuite) TestExportBoard() {
	result, err := suite.services.Export.ExportBoard()
	suite.Require().NoError(err)
	suite.Equal(1, result.Boards)

	content, err := os.ReadFile(result.Path)
	suite.Require().NoError(err)
	suite.Contains(string(content), "Created: 2024-05-03 09:00:00")
	suite.Contains(string(content), "(since 2024-05-02 11:00:00)")
}

func TestLegacyDataTestSuite(t *testing.T) {
	suite.Run(t, new(LegacyDataTestSuite))
}
