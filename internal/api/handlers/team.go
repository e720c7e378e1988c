package handlers

import (
	"net/http"

	"team-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService  service.TeamServiceInterface
	boardService service.BoardServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, boardService service.BoardServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:  teamService,
		boardService: boardService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team with a unique name administered by an existing user
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Admin user not found"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.CreateTeam(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// DescribeTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) DescribeTeam(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	team, err := h.teamService.DescribeTeam(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Replace the name, description and admin of a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team or admin not found"
// @Failure 409 {object} ErrorResponse "Team name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.UpdateTeam(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AddUsersToTeam handles POST /teams/:id/users
// @Summary Add users to a team
// @Description Link up to 50 existing users to a team. Users already linked are skipped.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param users body service.TeamUsersRequest true "User IDs"
// @Success 204 "Users linked"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/users [post]
func (h *TeamHandler) AddUsersToTeam(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	var req service.TeamUsersRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.teamService.AddUsersToTeam(id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveUsersFromTeam handles DELETE /teams/:id/users
// @Summary Remove users from a team
// @Description Unlink up to 50 users from a team. Users not linked are ignored.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param users body service.TeamUsersRequest true "User IDs"
// @Success 204 "Users unlinked"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/users [delete]
func (h *TeamHandler) RemoveUsersFromTeam(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	var req service.TeamUsersRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.teamService.RemoveUsersFromTeam(id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTeamUsers handles GET /teams/:id/users
// @Summary List the users of a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.UserSummary "Users linked to the team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/users [get]
func (h *TeamHandler) ListTeamUsers(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	users, err := h.teamService.ListTeamUsers(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// ListTeamBoards handles GET /teams/:id/boards
// @Summary List the open boards of a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.BoardResponse "Open boards of the team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/boards [get]
func (h *TeamHandler) ListTeamBoards(c *gin.Context) {
	id, ok := parseID(c, "team")
	if !ok {
		return
	}

	boards, err := h.boardService.ListBoardsOfTeam(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boards)
}
