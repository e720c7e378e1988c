package handlers

import (
	"net/http"

	"team-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description Create a user with a unique name
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse "Successfully created user"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "User name already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /users
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} service.UserResponse "Successfully retrieved users"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// DescribeUser handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) DescribeUser(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	user, err := h.userService.DescribeUser(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /users/:id
// @Summary Update a user
// @Description Update the display name and description of a user. The name is immutable.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to update"
// @Success 200 {object} service.UserResponse "Successfully updated user"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserTeams handles GET /users/:id/teams
// @Summary List the teams of a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} service.TeamResponse "Teams the user belongs to"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/teams [get]
func (h *UserHandler) GetUserTeams(c *gin.Context) {
	id, ok := parseID(c, "user")
	if !ok {
		return
	}

	teams, err := h.userService.GetUserTeams(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
