package repository

import (
	"team-board-backend/internal/database/models"
	"team-board-backend/internal/storage"
)

// BoardRepository handles storage operations for boards
type BoardRepository struct {
	*Collection[models.Board]
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(store storage.Store) *BoardRepository {
	return &BoardRepository{Collection: NewCollection[models.Board](store, storage.CollectionBoards)}
}

// Create assigns the next id to board and appends it. Names are unique per team.
func (r *BoardRepository) Create(board *models.Board) error {
	return r.Update(func(records []models.Board) ([]models.Board, error) {
		boards := models.Boards(records)
		if boards.NameExistsInTeam(board.TeamID, board.Name) {
			return nil, ErrDuplicateKey
		}
		board.ID = boards.NextID()
		return append(records, *board), nil
	})
}

// GetAll retrieves every board in storage order
func (r *BoardRepository) GetAll() (models.Boards, error) {
	var boards models.Boards
	err := r.View(func(records []models.Board) error {
		boards = records
		return nil
	})
	return boards, err
}

// GetOpen retrieves the boards that are not closed. A teamID above zero scopes them to one team.
func (r *BoardRepository) GetOpen(teamID int) (models.Boards, error) {
	var boards models.Boards
	err := r.View(func(records []models.Board) error {
		boards = models.Boards(records).Open(teamID)
		return nil
	})
	return boards, err
}

// GetByID retrieves a board by ID
func (r *BoardRepository) GetByID(id int) (*models.Board, error) {
	var board *models.Board
	err := r.View(func(records []models.Board) error {
		board = models.Boards(records).FindByID(id)
		if board == nil {
			return ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}
