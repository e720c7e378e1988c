package handlers_test

import (
	"net/http"
	"testing"

	"team-board-backend/internal/api/handlers"
	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/mocks"
	"team-board-backend/internal/service"
	"team-board-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	mockBoards  *mocks.MockBoardServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockBoards = mocks.NewMockBoardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService, suite.mockBoards)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/api/v1/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.DescribeTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.POST("/:id/users", suite.handler.AddUsersToTeam)
		teams.DELETE("/:id/users", suite.handler.RemoveUsersFromTeam)
		teams.GET("/:id/users", suite.handler.ListTeamUsers)
		teams.GET("/:id/boards", suite.handler.ListTeamBoards)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(&service.CreateTeamRequest{Name: "core", Description: "d", Admin: 1}).
			Return(&service.TeamResponse{ID: 1, Name: "core", Description: "d", Admin: 1}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
			"name":        "core",
			"description": "d",
			"admin":       1,
		})

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, 1, response.ID)
		assert.Equal(t, 1, response.Admin)
	})

	suite.T().Run("Admin not found", func(t *testing.T) {
		suite.mockService.EXPECT().CreateTeam(gomock.Any()).Return(nil, apperrors.ErrAdminNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "core", "admin": 42})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "admin user not found")
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.mockService.EXPECT().CreateTeam(gomock.Any()).Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{"name": "core", "admin": 1})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "team already exists")
	})

	suite.T().Run("Wrong field type", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/teams", `{"name":"core","admin":"one"}`)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	})
}

func (suite *TeamHandlerTestSuite) TestListAndDescribe() {
	suite.T().Run("List", func(t *testing.T) {
		suite.mockService.EXPECT().ListTeams().Return([]service.TeamResponse{{ID: 1, Name: "core"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams", nil)

		var response []service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("Describe", func(t *testing.T) {
		suite.mockService.EXPECT().DescribeTeam(1).Return(&service.TeamResponse{ID: 1, Name: "core"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1", nil)

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "core", response.Name)
	})

	suite.T().Run("Describe unknown team", func(t *testing.T) {
		suite.mockService.EXPECT().DescribeTeam(4).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/4", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/core", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateTeam(1, &service.UpdateTeamRequest{Name: "platform", Admin: 2}).
			Return(&service.TeamResponse{ID: 1, Name: "platform", Admin: 2}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1", map[string]interface{}{"name": "platform", "admin": 2})

		var response service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "platform", response.Name)
	})

	suite.T().Run("Name taken", func(t *testing.T) {
		suite.mockService.EXPECT().UpdateTeam(1, gomock.Any()).Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/teams/1", map[string]interface{}{"name": "other", "admin": 2})
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
	})
}

func (suite *TeamHandlerTestSuite) TestMembership() {
	suite.T().Run("Add users", func(t *testing.T) {
		suite.mockService.EXPECT().AddUsersToTeam(1, &service.TeamUsersRequest{Users: []int{2, 3}}).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/users", map[string]interface{}{"users": []int{2, 3}})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("Add unknown user", func(t *testing.T) {
		suite.mockService.EXPECT().AddUsersToTeam(1, gomock.Any()).Return(apperrors.ErrUserNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/users", map[string]interface{}{"users": []int{99}})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "user not found")
	})

	suite.T().Run("Batch too large", func(t *testing.T) {
		suite.mockService.EXPECT().RemoveUsersFromTeam(1, gomock.Any()).
			Return(apperrors.NewValidationError("users", "must contain at most 50 item(s)"))

		ids := make([]int, 51)
		for i := range ids {
			ids[i] = i + 1
		}
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/1/users", map[string]interface{}{"users": ids})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "at most 50")
	})

	suite.T().Run("Remove users", func(t *testing.T) {
		suite.mockService.EXPECT().RemoveUsersFromTeam(1, &service.TeamUsersRequest{Users: []int{2}}).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/1/users", map[string]interface{}{"users": []int{2}})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("List users", func(t *testing.T) {
		suite.mockService.EXPECT().ListTeamUsers(1).Return([]service.UserSummary{{ID: 2, Name: "bob", DisplayName: "Bob"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1/users", nil)

		var response []service.UserSummary
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, []service.UserSummary{{ID: 2, Name: "bob", DisplayName: "Bob"}}, response)
	})
}

func (suite *TeamHandlerTestSuite) TestListTeamBoards() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockBoards.EXPECT().ListBoardsOfTeam(1).Return([]service.BoardResponse{{ID: 1, Name: "Sprint1", TeamID: 1, BoardStatus: "Open"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/1/boards", nil)

		var response []service.BoardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, "Sprint1", response[0].Name)
	})

	suite.T().Run("Unknown team", func(t *testing.T) {
		suite.mockBoards.EXPECT().ListBoardsOfTeam(8).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/8/boards", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
