package service_test

import (
	"fmt"
	"sync"
	"testing"

	"team-board-backend/internal/database/models"
	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/service"
	"team-board-backend/internal/storage"

	"github.com/stretchr/testify/suite"
)

// BoardServiceTestSuite tests the board and task lifecycle
type BoardServiceTestSuite struct {
	ServiceTestSuite
}

func (suite *BoardServiceTestSuite) TestBoardLifecycleScenario() {
	user, err := suite.services.Users.CreateUser(&service.CreateUserRequest{Name: "alice", DisplayName: "Alice", Description: "d"})
	suite.Require().NoError(err)
	suite.Equal(1, user.ID)

	team, err := suite.services.Teams.CreateTeam(&service.CreateTeamRequest{Name: "core", Description: "d", Admin: 1})
	suite.Require().NoError(err)
	suite.Equal(1, team.ID)

	suite.Require().NoError(suite.services.Teams.AddUsersToTeam(1, &service.TeamUsersRequest{Users: []int{1}}))

	board, err := suite.services.Boards.CreateBoard(&service.CreateBoardRequest{Name: "Sprint1", Description: "d", TeamID: 1})
	suite.Require().NoError(err)
	suite.Equal(1, board.ID)
	suite.Equal(models.BoardStatusOpen, board.BoardStatus)

	task, err := suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: 1, Title: "Fix bug", Description: "d", UserID: 1})
	suite.Require().NoError(err)
	suite.Equal(1, task.ID)
	suite.Equal(models.TaskStatusOpen, task.TaskStatus)

	updated, err := suite.services.Boards.UpdateTaskStatus(1, &service.UpdateTaskStatusRequest{Status: models.TaskStatusClosed})
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusClosed, updated.TaskStatus)

	closed, err := suite.services.Boards.CloseBoard(1)
	suite.Require().NoError(err)
	suite.Equal(models.BoardStatusClosed, closed.BoardStatus)

	again, err := suite.services.Boards.CloseBoard(1)
	suite.Require().NoError(err, "closing a closed board is a no-op")
	suite.Equal(models.BoardStatusClosed, again.BoardStatus)
}

func (suite *BoardServiceTestSuite) TestCreateBoardWithMissingTeamPersistsNothing() {
	_, err := suite.services.Boards.CreateBoard(&service.CreateBoardRequest{Name: "Sprint1", TeamID: 3})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.Zero(suite.countStored(storage.CollectionBoards))
}

func (suite *BoardServiceTestSuite) TestBoardNamesAreUniquePerTeam() {
	admin := suite.createUser("alice")
	core := suite.createTeam("core", admin)
	infra := suite.createTeam("infra", admin)

	suite.createBoard("Sprint1", core)
	suite.Equal(2, suite.createBoard("Sprint1", infra), "same name in another team is allowed")

	_, err := suite.services.Boards.CreateBoard(&service.CreateBoardRequest{Name: "Sprint1", TeamID: core})
	suite.ErrorIs(err, apperrors.ErrBoardExists)
	suite.Equal(2, suite.countStored(storage.CollectionBoards))
}

func (suite *BoardServiceTestSuite) TestCloseBoardRequiresClosedTasks() {
	alice, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)
	first := suite.addTask(board, "first", alice)
	suite.addTask(board, "second", alice)

	_, err := suite.services.Boards.UpdateTaskStatus(first, &service.UpdateTaskStatusRequest{Status: models.TaskStatusClosed})
	suite.Require().NoError(err)

	_, err = suite.services.Boards.CloseBoard(board)
	suite.True(apperrors.IsPreconditionFailed(err))

	stored, err := suite.services.Boards.GetBoard(board)
	suite.Require().NoError(err)
	suite.Equal(models.BoardStatusOpen, stored.BoardStatus)

	_, err = suite.services.Boards.CloseBoard(99)
	suite.ErrorIs(err, apperrors.ErrBoardNotFound)
}

func (suite *BoardServiceTestSuite) TestCloseEmptyBoard() {
	_, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)

	closed, err := suite.services.Boards.CloseBoard(board)
	suite.Require().NoError(err)
	suite.Equal(models.BoardStatusClosed, closed.BoardStatus)
}

func (suite *BoardServiceTestSuite) TestAddTaskToClosedBoardLeavesTasksUnchanged() {
	alice, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)
	_, err := suite.services.Boards.CloseBoard(board)
	suite.Require().NoError(err)

	before := suite.countStored(storage.CollectionTasks)
	_, err = suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: board, Title: "late", UserID: alice})
	suite.ErrorIs(err, apperrors.ErrBoardClosed)
	suite.Equal(before, suite.countStored(storage.CollectionTasks))
}

func (suite *BoardServiceTestSuite) TestAddTaskRequiresTeamMember() {
	alice := suite.createUser("alice")
	core := suite.createTeam("core", alice)
	board := suite.createBoard("Sprint1", core)

	_, err := suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: board, Title: "t", UserID: alice})
	suite.ErrorIs(err, apperrors.ErrAssigneeNotInTeam, "the admin is not a member until linked")
	suite.True(apperrors.IsForbidden(err))

	bob, infra := suite.teamWithMember("bob", "infra")
	suite.NotEqual(core, infra)
	_, err = suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: board, Title: "t", UserID: bob})
	suite.True(apperrors.IsForbidden(err), "a member of another team is rejected")

	_, err = suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: board, Title: "t", UserID: 404})
	suite.True(apperrors.IsForbidden(err))

	suite.Zero(suite.countStored(storage.CollectionTasks))
}

func (suite *BoardServiceTestSuite) TestAddTaskErrors() {
	alice, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)
	suite.addTask(board, "Fix bug", alice)

	_, err := suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: board, Title: "Fix bug", UserID: alice})
	suite.ErrorIs(err, apperrors.ErrTaskExists)

	_, err = suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: 9, Title: "x", UserID: alice})
	suite.ErrorIs(err, apperrors.ErrBoardNotFound)

	_, err = suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: board, Title: "", UserID: alice})
	suite.True(apperrors.IsValidation(err))

	other := suite.createBoard("Sprint2", core)
	suite.Equal(2, suite.addTask(other, "Fix bug", alice), "titles are unique per board and ids are global")
}

func (suite *BoardServiceTestSuite) TestUpdateTaskStatus() {
	alice, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)
	task := suite.addTask(board, "t", alice)

	for _, status := range []models.TaskStatus{models.TaskStatusClosed, models.TaskStatusOpen, models.TaskStatusInProgress} {
		updated, err := suite.services.Boards.UpdateTaskStatus(task, &service.UpdateTaskStatusRequest{Status: status})
		suite.Require().NoError(err)
		suite.Equal(status, updated.TaskStatus)
	}

	_, err := suite.services.Boards.UpdateTaskStatus(task, &service.UpdateTaskStatusRequest{Status: "Done"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.services.Boards.UpdateTaskStatus(task, &service.UpdateTaskStatusRequest{})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.services.Boards.UpdateTaskStatus(50, &service.UpdateTaskStatusRequest{Status: models.TaskStatusOpen})
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)

	stored, err := suite.services.Boards.GetTask(task)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusInProgress, stored.TaskStatus)
}

func (suite *BoardServiceTestSuite) TestUpdateTaskStatusOnClosedBoard() {
	alice, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)
	task := suite.addTask(board, "t", alice)
	closeReq := &service.UpdateTaskStatusRequest{Status: models.TaskStatusClosed}
	_, err := suite.services.Boards.UpdateTaskStatus(task, closeReq)
	suite.Require().NoError(err)
	_, err = suite.services.Boards.CloseBoard(board)
	suite.Require().NoError(err)

	reopen := &service.UpdateTaskStatusRequest{Status: models.TaskStatusOpen}

	suite.Run("permitted by default", func() {
		updated, err := suite.services.Boards.UpdateTaskStatus(task, reopen)
		suite.Require().NoError(err)
		suite.Equal(models.TaskStatusOpen, updated.TaskStatus)
	})

	suite.Run("forbidden when configured", func() {
		suite.cfg.AllowClosedBoardTaskUpdates = false
		suite.rewire()

		_, err := suite.services.Boards.UpdateTaskStatus(task, closeReq)
		suite.ErrorIs(err, apperrors.ErrBoardClosed)

		stored, err := suite.services.Boards.GetTask(task)
		suite.Require().NoError(err)
		suite.Equal(models.TaskStatusOpen, stored.TaskStatus)
	})
}

func (suite *BoardServiceTestSuite) TestListBoardsHidesClosedBoards() {
	_, core := suite.teamWithMember("alice", "core")
	_, infra := suite.teamWithMember("bob", "infra")
	closedBoard := suite.createBoard("old", core)
	suite.createBoard("current", core)
	suite.createBoard("infra board", infra)
	_, err := suite.services.Boards.CloseBoard(closedBoard)
	suite.Require().NoError(err)

	boards, err := suite.services.Boards.ListBoards()
	suite.Require().NoError(err)
	suite.Len(boards, 2)
	for _, board := range boards {
		suite.NotEqual(models.BoardStatusClosed, board.BoardStatus)
	}

	teamBoards, err := suite.services.Boards.ListBoardsOfTeam(core)
	suite.Require().NoError(err)
	suite.Require().Len(teamBoards, 1)
	suite.Equal("current", teamBoards[0].Name)

	_, err = suite.services.Boards.ListBoardsOfTeam(42)
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	board, err := suite.services.Boards.GetBoard(closedBoard)
	suite.Require().NoError(err, "closed boards stay retrievable by id")
	suite.Equal(models.BoardStatusClosed, board.BoardStatus)
}

func (suite *BoardServiceTestSuite) TestListTasksInBoardHidesClosedTasks() {
	alice, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)
	done := suite.addTask(board, "done", alice)
	suite.addTask(board, "pending", alice)
	_, err := suite.services.Boards.UpdateTaskStatus(done, &service.UpdateTaskStatusRequest{Status: models.TaskStatusClosed})
	suite.Require().NoError(err)

	tasks, err := suite.services.Boards.ListTasksInBoard(board)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal("pending", tasks[0].Title)

	_, err = suite.services.Boards.ListTasksInBoard(7)
	suite.ErrorIs(err, apperrors.ErrBoardNotFound)

	task, err := suite.services.Boards.GetTask(done)
	suite.Require().NoError(err)
	suite.Equal(models.TaskStatusClosed, task.TaskStatus)
}

func (suite *BoardServiceTestSuite) TestConcurrentAddTaskAssignsDistinctIDs() {
	alice, core := suite.teamWithMember("alice", "core")
	board := suite.createBoard("Sprint1", core)

	const writers = 25
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.services.Boards.AddTask(&service.CreateTaskRequest{BoardID: board, Title: fmt.Sprintf("task %d", i), UserID: alice})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		suite.Require().NoError(err)
	}

	var tasks []models.Task
	suite.Require().NoError(suite.store.Load(storage.CollectionTasks, &tasks))
	suite.Len(tasks, writers)
	seen := map[int]bool{}
	for _, task := range tasks {
		suite.False(seen[task.ID], "id %d assigned twice", task.ID)
		seen[task.ID] = true
	}
}

func TestBoardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BoardServiceTestSuite))
}
