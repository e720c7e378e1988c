package service

import (
	"errors"
	"fmt"
	"time"

	"team-board-backend/internal/database/models"
	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// BoardOptions holds the configurable board rules
type BoardOptions struct {
	// AllowClosedBoardTaskUpdates permits status changes of tasks whose board is closed
	AllowClosedBoardTaskUpdates bool
}

// BoardService handles the board and task lifecycle
type BoardService struct {
	repos     *repository.Repositories
	validator *validator.Validate
	options   BoardOptions
}

// NewBoardService creates a new board service
func NewBoardService(repos *repository.Repositories, validator *validator.Validate, options BoardOptions) *BoardService {
	return &BoardService{
		repos:     repos,
		validator: validator,
		options:   options,
	}
}

// CreateBoardRequest represents the request to create a board
type CreateBoardRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=64" example:"Sprint1"`
	Description string `json:"description" validate:"max=128"`
	TeamID      int    `json:"team_id" validate:"required,gt=0" example:"1"`
}

// CreateTaskRequest represents the request to add a task to a board
type CreateTaskRequest struct {
	BoardID     int    `json:"board_id" validate:"required,gt=0" example:"1"`
	Title       string `json:"title" validate:"required,min=1,max=64" example:"Fix bug"`
	Description string `json:"description" validate:"max=128"`
	UserID      int    `json:"user_id" validate:"required,gt=0" example:"1"`
}

// UpdateTaskStatusRequest sets the status of a task
type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" validate:"required" example:"In Progress"`
}

// BoardResponse represents the response for board operations
type BoardResponse struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	TeamID       int                `json:"team_id"`
	BoardStatus  models.BoardStatus `json:"board_status"`
	CreationTime string             `json:"creation_time"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID           int               `json:"id"`
	BoardID      int               `json:"board_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	UserID       int               `json:"user_id"`
	TaskStatus   models.TaskStatus `json:"task_status"`
	CreationTime string            `json:"creation_time"`
}

// CreateBoard opens a new board for an existing team
func (s *BoardService) CreateBoard(req *CreateBoardRequest) (*BoardResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.checkTeam(req.TeamID); err != nil {
		return nil, err
	}

	board := &models.Board{
		BaseModel:   models.BaseModel{CreationTime: models.NewTimestamp(time.Now().UTC())},
		Name:        req.Name,
		Description: req.Description,
		TeamID:      req.TeamID,
		BoardStatus: models.BoardStatusOpen,
	}
	if err := s.repos.Boards.Create(board); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, apperrors.ErrBoardExists
		}
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	logrus.WithFields(logrus.Fields{"board_id": board.ID, "team_id": board.TeamID, "name": board.Name}).Info("board created")
	response := toBoardResponse(board)
	return &response, nil
}

// CloseBoard closes a board whose tasks are all closed. Closing a closed board does nothing.
func (s *BoardService) CloseBoard(id int) (*BoardResponse, error) {
	var closed models.Board
	changed := false
	err := s.repos.Boards.Update(func(records []models.Board) ([]models.Board, error) {
		board := models.Boards(records).FindByID(id)
		if board == nil {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrBoardNotFound, id)
		}
		if board.IsClosed() {
			closed = *board
			return records, nil
		}

		err := s.repos.Tasks.View(func(tasks []models.Task) error {
			if pending := models.Tasks(tasks).CountNotClosed(id); pending > 0 {
				return apperrors.NewPreconditionFailedError(fmt.Sprintf("board %d has %d task(s) that are not closed", id, pending))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		board.BoardStatus = models.BoardStatusClosed
		closed = *board
		changed = true
		return records, nil
	})
	if err != nil {
		return nil, s.wrap(err, "failed to close board")
	}

	if changed {
		logrus.WithField("board_id", id).Info("board closed")
	} else {
		logrus.WithField("board_id", id).Debug("board already closed")
	}
	response := toBoardResponse(&closed)
	return &response, nil
}

// AddTask adds a task to an open board, assigned to a member of the board's team
func (s *BoardService) AddTask(req *CreateTaskRequest) (*TaskResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	task := &models.Task{
		BaseModel:   models.BaseModel{CreationTime: models.NewTimestamp(time.Now().UTC())},
		BoardID:     req.BoardID,
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
		TaskStatus:  models.TaskStatusOpen,
	}

	err := s.repos.Memberships.View(func(links []models.Membership) error {
		return s.repos.Boards.View(func(records []models.Board) error {
			board := models.Boards(records).FindByID(req.BoardID)
			if board == nil {
				return fmt.Errorf("%w: id %d", apperrors.ErrBoardNotFound, req.BoardID)
			}
			if board.IsClosed() {
				return apperrors.ErrBoardClosed
			}
			if !models.Memberships(links).Exists(board.TeamID, req.UserID) {
				return apperrors.ErrAssigneeNotInTeam
			}

			return s.repos.Tasks.Update(func(tasks []models.Task) ([]models.Task, error) {
				existing := models.Tasks(tasks)
				if existing.TitleExistsInBoard(req.BoardID, req.Title) {
					return nil, apperrors.ErrTaskExists
				}
				task.ID = existing.NextID()
				return append(tasks, *task), nil
			})
		})
	})
	if err != nil {
		return nil, s.wrap(err, "failed to add task")
	}

	logrus.WithFields(logrus.Fields{"task_id": task.ID, "board_id": task.BoardID, "user_id": task.UserID}).Info("task added")
	response := toTaskResponse(task)
	return &response, nil
}

// UpdateTaskStatus sets the status of a task. Any status may follow any other.
func (s *BoardService) UpdateTaskStatus(id int, req *UpdateTaskStatusRequest) (*TaskResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("must be one of %q, %q, %q",
			models.TaskStatusOpen, models.TaskStatusInProgress, models.TaskStatusClosed))
	}

	var updated models.Task
	err := s.repos.Boards.View(func(boards []models.Board) error {
		return s.repos.Tasks.Update(func(records []models.Task) ([]models.Task, error) {
			task := models.Tasks(records).FindByID(id)
			if task == nil {
				return nil, fmt.Errorf("%w: id %d", apperrors.ErrTaskNotFound, id)
			}
			if !s.options.AllowClosedBoardTaskUpdates {
				if board := models.Boards(boards).FindByID(task.BoardID); board != nil && board.IsClosed() {
					return nil, apperrors.ErrBoardClosed
				}
			}
			task.TaskStatus = req.Status
			updated = *task
			return records, nil
		})
	})
	if err != nil {
		return nil, s.wrap(err, "failed to update task status")
	}

	logrus.WithFields(logrus.Fields{"task_id": id, "status": req.Status}).Info("task status updated")
	response := toTaskResponse(&updated)
	return &response, nil
}

// ListBoards returns every board that is not closed
func (s *BoardService) ListBoards() ([]BoardResponse, error) {
	boards, err := s.repos.Boards.GetOpen(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return toBoardResponses(boards), nil
}

// ListBoardsOfTeam returns the boards of an existing team that are not closed
func (s *BoardService) ListBoardsOfTeam(teamID int) ([]BoardResponse, error) {
	if err := s.checkTeam(teamID); err != nil {
		return nil, err
	}

	boards, err := s.repos.Boards.GetOpen(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team boards: %w", err)
	}
	return toBoardResponses(boards), nil
}

// ListTasksInBoard returns the tasks of an existing board that are not closed
func (s *BoardService) ListTasksInBoard(boardID int) ([]TaskResponse, error) {
	if _, err := s.GetBoard(boardID); err != nil {
		return nil, err
	}

	tasks, err := s.repos.Tasks.GetOpenByBoard(boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = toTaskResponse(&tasks[i])
	}
	return responses, nil
}

// GetBoard returns a board regardless of its status
func (s *BoardService) GetBoard(id int) (*BoardResponse, error) {
	board, err := s.repos.Boards.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrBoardNotFound, id)
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	response := toBoardResponse(board)
	return &response, nil
}

// GetTask returns a task regardless of its status
func (s *BoardService) GetTask(id int) (*TaskResponse, error) {
	task, err := s.repos.Tasks.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", apperrors.ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	response := toTaskResponse(task)
	return &response, nil
}

func (s *BoardService) checkTeam(teamID int) error {
	exists, err := s.repos.Teams.Exists(teamID)
	if err != nil {
		return fmt.Errorf("failed to verify team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: id %d", apperrors.ErrTeamNotFound, teamID)
	}
	return nil
}

// wrap keeps domain errors as they are and adds context to storage failures
func (s *BoardService) wrap(err error, context string) error {
	if apperrors.IsNotFound(err) || apperrors.IsAlreadyExists(err) || apperrors.IsForbidden(err) ||
		apperrors.IsPreconditionFailed(err) || apperrors.IsBoardClosed(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, err)
}

func toBoardResponse(board *models.Board) BoardResponse {
	return BoardResponse{
		ID:           board.ID,
		Name:         board.Name,
		Description:  board.Description,
		TeamID:       board.TeamID,
		BoardStatus:  board.BoardStatus,
		CreationTime: formatTime(board.CreationTime.Time),
	}
}

func toBoardResponses(boards models.Boards) []BoardResponse {
	responses := make([]BoardResponse, len(boards))
	for i := range boards {
		responses[i] = toBoardResponse(&boards[i])
	}
	return responses
}

func toTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:           task.ID,
		BoardID:      task.BoardID,
		Title:        task.Title,
		Description:  task.Description,
		UserID:       task.UserID,
		TaskStatus:   task.TaskStatus,
		CreationTime: formatTime(task.CreationTime.Time),
	}
}
