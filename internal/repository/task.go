package repository

import (
	"team-board-backend/internal/database/models"
	"team-board-backend/internal/storage"
)

// TaskRepository handles storage operations for tasks
type TaskRepository struct {
	*Collection[models.Task]
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(store storage.Store) *TaskRepository {
	return &TaskRepository{Collection: NewCollection[models.Task](store, storage.CollectionTasks)}
}

// GetAll retrieves every task in storage order
func (r *TaskRepository) GetAll() (models.Tasks, error) {
	var tasks models.Tasks
	err := r.View(func(records []models.Task) error {
		tasks = records
		return nil
	})
	return tasks, err
}

// GetOpenByBoard retrieves the tasks of a board that are not closed
func (r *TaskRepository) GetOpenByBoard(boardID int) (models.Tasks, error) {
	var tasks models.Tasks
	err := r.View(func(records []models.Task) error {
		tasks = models.Tasks(records).OpenOfBoard(boardID)
		return nil
	})
	return tasks, err
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id int) (*models.Task, error) {
	var task *models.Task
	err := r.View(func(records []models.Task) error {
		task = models.Tasks(records).FindByID(id)
		if task == nil {
			return ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}
