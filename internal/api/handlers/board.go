package handlers

import (
	"net/http"
	"path/filepath"

	"team-board-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BoardHandler handles HTTP requests for boards, tasks and the board export
type BoardHandler struct {
	boardService  service.BoardServiceInterface
	exportService service.ExportServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService service.BoardServiceInterface, exportService service.ExportServiceInterface) *BoardHandler {
	return &BoardHandler{
		boardService:  boardService,
		exportService: exportService,
	}
}

// CreateBoard handles POST /boards
// @Summary Create a new board
// @Description Open a board for an existing team. Board names are unique per team.
// @Tags boards
// @Accept json
// @Produce json
// @Param board body service.CreateBoardRequest true "Board data"
// @Success 201 {object} service.BoardResponse "Successfully created board"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Board name already taken in the team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req service.CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boardService.CreateBoard(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// ListBoards handles GET /boards
// @Summary List open boards
// @Tags boards
// @Produce json
// @Success 200 {array} service.BoardResponse "Boards that are not closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /boards [get]
func (h *BoardHandler) ListBoards(c *gin.Context) {
	boards, err := h.boardService.ListBoards()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, boards)
}

// GetBoard handles GET /boards/:id
// @Summary Get board by ID
// @Tags boards
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} service.BoardResponse "Successfully retrieved board"
// @Failure 400 {object} ErrorResponse "Invalid board ID"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	id, ok := parseID(c, "board")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// CloseBoard handles PUT /boards/:id/close
// @Summary Close a board
// @Description Close a board whose tasks are all closed. Closing a closed board is a no-op.
// @Tags boards
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} service.BoardResponse "Board is closed"
// @Failure 400 {object} ErrorResponse "Invalid board ID"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Failure 409 {object} ErrorResponse "Board still has tasks that are not closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /boards/{id}/close [put]
func (h *BoardHandler) CloseBoard(c *gin.Context) {
	id, ok := parseID(c, "board")
	if !ok {
		return
	}

	board, err := h.boardService.CloseBoard(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// ListTasksInBoard handles GET /boards/:id/tasks
// @Summary List the open tasks of a board
// @Tags boards
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {array} service.TaskResponse "Tasks that are not closed"
// @Failure 400 {object} ErrorResponse "Invalid board ID"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /boards/{id}/tasks [get]
func (h *BoardHandler) ListTasksInBoard(c *gin.Context) {
	id, ok := parseID(c, "board")
	if !ok {
		return
	}

	tasks, err := h.boardService.ListTasksInBoard(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ExportBoard handles GET /boards/export
// @Summary Export every board
// @Description Write the full board report and download it. With download=false the written location is returned instead.
// @Tags boards
// @Produce octet-stream
// @Produce json
// @Param download query bool false "Send the file as an attachment" default(true)
// @Success 200 {object} service.ExportResult "Export written"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /boards/export [get]
func (h *BoardHandler) ExportBoard(c *gin.Context) {
	result, err := h.exportService.ExportBoard()
	if err != nil {
		respondError(c, err)
		return
	}

	if c.DefaultQuery("download", "true") == "false" {
		c.JSON(http.StatusOK, result)
		return
	}

	c.Header("Content-Type", result.ContentType)
	c.FileAttachment(result.Path, filepath.Base(result.Path))
}

// AddTask handles POST /tasks
// @Summary Add a task to a board
// @Description Add a task to an open board. The assignee must belong to the board's team.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse "Successfully created task"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Assignee is not a member of the board's team"
// @Failure 404 {object} ErrorResponse "Board not found"
// @Failure 409 {object} ErrorResponse "Board closed or task title already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks [post]
func (h *BoardHandler) AddTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.boardService.AddTask(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /tasks/:id
// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} service.TaskResponse "Successfully retrieved task"
// @Failure 400 {object} ErrorResponse "Invalid task ID"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/{id} [get]
func (h *BoardHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	task, err := h.boardService.GetTask(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus handles PUT /tasks/:id/status
// @Summary Update the status of a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param status body service.UpdateTaskStatusRequest true "New status: Open, In Progress or Closed"
// @Success 200 {object} service.TaskResponse "Successfully updated task"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Failure 409 {object} ErrorResponse "Board is closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tasks/{id}/status [put]
func (h *BoardHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := parseID(c, "task")
	if !ok {
		return
	}

	var req service.UpdateTaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.boardService.UpdateTaskStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}
