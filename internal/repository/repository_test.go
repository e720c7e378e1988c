package repository_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"team-board-backend/internal/database/models"
	"team-board-backend/internal/mocks"
	"team-board-backend/internal/repository"
	"team-board-backend/internal/storage"
	"team-board-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RepositoryTestSuite tests the repositories over an in-memory store
type RepositoryTestSuite struct {
	suite.Suite
	store     *storage.MemoryStore
	repos     *repository.Repositories
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	suite.store = storage.NewMemoryStore()
	suite.repos = repository.New(suite.store)
	suite.factories = testutils.NewFactorySet()
}

func (suite *RepositoryTestSuite) TestUserCreateAssignsSequentialIDs() {
	for i := 1; i <= 3; i++ {
		user := &models.User{Name: fmt.Sprintf("user%d", i)}
		suite.Require().NoError(suite.repos.Users.Create(user))
		suite.Equal(i, user.ID)
	}

	users, err := suite.repos.Users.GetAll()
	suite.Require().NoError(err)
	suite.Len(users, 3)
	suite.Equal("user1", users[0].Name)
}

func (suite *RepositoryTestSuite) TestUserCreateDuplicateName() {
	suite.Require().NoError(suite.repos.Users.Create(&models.User{Name: "alice"}))

	err := suite.repos.Users.Create(&models.User{Name: "alice"})
	suite.ErrorIs(err, repository.ErrDuplicateKey)

	users, err := suite.repos.Users.GetAll()
	suite.Require().NoError(err)
	suite.Len(users, 1)
}

func (suite *RepositoryTestSuite) TestUserGetByID() {
	suite.Require().NoError(suite.repos.Users.Create(&models.User{Name: "alice", DisplayName: "Alice"}))

	user, err := suite.repos.Users.GetByID(1)
	suite.Require().NoError(err)
	suite.Equal("Alice", user.DisplayName)

	_, err = suite.repos.Users.GetByID(2)
	suite.ErrorIs(err, repository.ErrRecordNotFound)
}

func (suite *RepositoryTestSuite) TestUserModify() {
	suite.Require().NoError(suite.repos.Users.Create(&models.User{Name: "alice", DisplayName: "Alice"}))

	err := suite.repos.Users.Modify(1, func(user *models.User) error {
		user.Description = "updated"
		return nil
	})
	suite.Require().NoError(err)

	user, err := suite.repos.Users.GetByID(1)
	suite.Require().NoError(err)
	suite.Equal("updated", user.Description)
	suite.Equal("Alice", user.DisplayName)

	suite.ErrorIs(suite.repos.Users.Modify(9, func(*models.User) error { return nil }), repository.ErrRecordNotFound)

	failure := errors.New("rejected")
	suite.ErrorIs(suite.repos.Users.Modify(1, func(user *models.User) error {
		user.Description = "lost"
		return failure
	}), failure)

	user, err = suite.repos.Users.GetByID(1)
	suite.Require().NoError(err)
	suite.Equal("updated", user.Description, "failed modification is not saved")
}

func (suite *RepositoryTestSuite) TestTeamCreateUsesMaxPlusOne() {
	seeded := []models.Team{suite.factories.Team.Create(1, 1), suite.factories.Team.Create(5, 1)}
	suite.Require().NoError(suite.store.Save(storage.CollectionTeams, seeded))

	team := &models.Team{Name: "fresh", Admin: 1}
	suite.Require().NoError(suite.repos.Teams.Create(team))
	suite.Equal(6, team.ID)
	suite.NotNil(team.Users)
	suite.Empty(team.Users)
}

func (suite *RepositoryTestSuite) TestTeamCreateDuplicateName() {
	suite.Require().NoError(suite.repos.Teams.Create(&models.Team{Name: "core", Admin: 1}))
	suite.ErrorIs(suite.repos.Teams.Create(&models.Team{Name: "core", Admin: 2}), repository.ErrDuplicateKey)
}

func (suite *RepositoryTestSuite) TestTeamReplace() {
	created := models.NewTimestamp(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repos.Teams.Create(&models.Team{BaseModel: models.BaseModel{CreationTime: created}, Name: "core", Admin: 1}))
	suite.Require().NoError(suite.repos.Teams.Create(&models.Team{Name: "infra", Admin: 1}))

	suite.Run("keeps its own name", func() {
		team := &models.Team{BaseModel: models.BaseModel{ID: 1}, Name: "core", Description: "new", Admin: 2}
		suite.Require().NoError(suite.repos.Teams.Replace(team))
		suite.Equal(created, team.CreationTime)

		stored, err := suite.repos.Teams.GetByID(1)
		suite.Require().NoError(err)
		suite.Equal("new", stored.Description)
		suite.Equal(2, stored.Admin)
		suite.Equal(created, stored.CreationTime)
	})

	suite.Run("name of another team", func() {
		team := &models.Team{BaseModel: models.BaseModel{ID: 1}, Name: "infra", Admin: 1}
		suite.ErrorIs(suite.repos.Teams.Replace(team), repository.ErrDuplicateKey)
	})

	suite.Run("missing team", func() {
		team := &models.Team{BaseModel: models.BaseModel{ID: 7}, Name: "web", Admin: 1}
		suite.ErrorIs(suite.repos.Teams.Replace(team), repository.ErrRecordNotFound)
	})
}

func (suite *RepositoryTestSuite) TestTeamExists() {
	suite.Require().NoError(suite.repos.Teams.Create(&models.Team{Name: "core", Admin: 1}))

	exists, err := suite.repos.Teams.Exists(1)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repos.Teams.Exists(2)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *RepositoryTestSuite) TestMemberships() {
	added, err := suite.repos.Memberships.AddUsers(1, []int{1, 2, 2})
	suite.Require().NoError(err)
	suite.Equal(2, added)

	added, err = suite.repos.Memberships.AddUsers(1, []int{1})
	suite.Require().NoError(err)
	suite.Zero(added)

	exists, err := suite.repos.Memberships.Exists(1, 2)
	suite.Require().NoError(err)
	suite.True(exists)

	ids, err := suite.repos.Memberships.GetUserIDsByTeam(1)
	suite.Require().NoError(err)
	suite.Equal([]int{1, 2}, ids)

	ids, err = suite.repos.Memberships.GetTeamIDsByUser(2)
	suite.Require().NoError(err)
	suite.Equal([]int{1}, ids)

	removed, err := suite.repos.Memberships.RemoveUsers(1, []int{2, 3})
	suite.Require().NoError(err)
	suite.Equal(1, removed)

	before, err := suite.repos.Memberships.GetAll()
	suite.Require().NoError(err)

	removed, err = suite.repos.Memberships.RemoveUsers(1, []int{2, 3})
	suite.Require().NoError(err)
	suite.Zero(removed)

	after, err := suite.repos.Memberships.GetAll()
	suite.Require().NoError(err)
	suite.Equal(before, after)
}

func (suite *RepositoryTestSuite) TestBoards() {
	suite.Require().NoError(suite.repos.Boards.Create(&models.Board{Name: "sprint", TeamID: 1, BoardStatus: models.BoardStatusOpen}))
	suite.Require().NoError(suite.repos.Boards.Create(&models.Board{Name: "sprint", TeamID: 2, BoardStatus: models.BoardStatusOpen}))
	suite.ErrorIs(suite.repos.Boards.Create(&models.Board{Name: "sprint", TeamID: 1}), repository.ErrDuplicateKey)

	suite.Require().NoError(suite.repos.Boards.Update(func(records []models.Board) ([]models.Board, error) {
		records[0].BoardStatus = models.BoardStatusClosed
		return records, nil
	}))

	open, err := suite.repos.Boards.GetOpen(0)
	suite.Require().NoError(err)
	suite.Len(open, 1)
	suite.Equal(2, open[0].ID)

	open, err = suite.repos.Boards.GetOpen(1)
	suite.Require().NoError(err)
	suite.Empty(open)

	board, err := suite.repos.Boards.GetByID(1)
	suite.Require().NoError(err)
	suite.True(board.IsClosed())

	_, err = suite.repos.Boards.GetByID(3)
	suite.ErrorIs(err, repository.ErrRecordNotFound)
}

func (suite *RepositoryTestSuite) TestTasks() {
	tasks := []models.Task{
		suite.factories.Task.Create(1, 1, 1),
		suite.factories.Task.WithStatus(2, 1, 1, models.TaskStatusClosed),
		suite.factories.Task.Create(3, 2, 1),
	}
	suite.Require().NoError(suite.store.Save(storage.CollectionTasks, tasks))

	open, err := suite.repos.Tasks.GetOpenByBoard(1)
	suite.Require().NoError(err)
	suite.Len(open, 1)
	suite.Equal(1, open[0].ID)

	task, err := suite.repos.Tasks.GetByID(2)
	suite.Require().NoError(err)
	suite.True(task.IsClosed())

	_, err = suite.repos.Tasks.GetByID(4)
	suite.ErrorIs(err, repository.ErrRecordNotFound)

	all, err := suite.repos.Tasks.GetAll()
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *RepositoryTestSuite) TestSnapshot() {
	suite.Require().NoError(suite.repos.Users.Create(&models.User{Name: "alice"}))
	suite.Require().NoError(suite.repos.Teams.Create(&models.Team{Name: "core", Admin: 1}))
	_, err := suite.repos.Memberships.AddUsers(1, []int{1})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repos.Boards.Create(&models.Board{Name: "sprint", TeamID: 1}))

	snap, err := suite.repos.Snapshot()
	suite.Require().NoError(err)
	suite.Len(snap.Users, 1)
	suite.Len(snap.Teams, 1)
	suite.Len(snap.Memberships, 1)
	suite.Len(snap.Boards, 1)
	suite.Empty(snap.Tasks)
}

func (suite *RepositoryTestSuite) TestConcurrentCreatesGetDistinctIDs() {
	const writers = 40

	var wg sync.WaitGroup
	ids := make([]int, writers)
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := &models.User{Name: fmt.Sprintf("user%d", i)}
			errs[i] = suite.repos.Users.Create(user)
			ids[i] = user.ID
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, writers)
	for i := 0; i < writers; i++ {
		suite.Require().NoError(errs[i])
		suite.False(seen[ids[i]], "id %d assigned twice", ids[i])
		seen[ids[i]] = true
	}

	users, err := suite.repos.Users.GetAll()
	suite.Require().NoError(err)
	suite.Len(users, writers)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func TestCollectionStoreFailures(t *testing.T) {
	t.Run("failed callback never saves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		store.EXPECT().Load(storage.CollectionUsers, gomock.Any()).Return(nil)

		failure := errors.New("rejected")
		collection := repository.NewCollection[models.User](store, storage.CollectionUsers)
		err := collection.Update(func(records []models.User) ([]models.User, error) {
			return nil, failure
		})
		assert.ErrorIs(t, err, failure)
	})

	t.Run("load error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		failure := errors.New("disk gone")
		store.EXPECT().Load(storage.CollectionBoards, gomock.Any()).Return(failure)

		repo := repository.NewBoardRepository(store)
		_, err := repo.GetAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "load boards")
	})

	t.Run("save error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStore(ctrl)
		failure := errors.New("read-only")
		store.EXPECT().Load(storage.CollectionTasks, gomock.Any()).Return(nil)
		store.EXPECT().Save(storage.CollectionTasks, gomock.Any()).Return(failure)

		collection := repository.NewCollection[models.Task](store, storage.CollectionTasks)
		err := collection.Update(func(records []models.Task) ([]models.Task, error) {
			return append(records, models.Task{Title: "t"}), nil
		})
		assert.ErrorIs(t, err, failure)
		assert.Contains(t, err.Error(), "save tasks")
	})

	t.Run("collection name", func(t *testing.T) {
		collection := repository.NewCollection[models.User](storage.NewMemoryStore(), storage.CollectionUsers)
		assert.Equal(t, "users", collection.Name())
	})
}
