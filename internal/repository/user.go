package repository

import (
	"team-board-backend/internal/database/models"
	"team-board-backend/internal/storage"
)

// UserRepository handles storage operations for users
type UserRepository struct {
	*Collection[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{Collection: NewCollection[models.User](store, storage.CollectionUsers)}
}

// Create assigns the next id to user and appends it. Names are unique.
func (r *UserRepository) Create(user *models.User) error {
	return r.Update(func(records []models.User) ([]models.User, error) {
		users := models.Users(records)
		if users.NameExists(user.Name) {
			return nil, ErrDuplicateKey
		}
		user.ID = users.NextID()
		return append(records, *user), nil
	})
}

// GetAll retrieves every user in storage order
func (r *UserRepository) GetAll() (models.Users, error) {
	var users models.Users
	err := r.View(func(records []models.User) error {
		users = records
		return nil
	})
	return users, err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user *models.User
	err := r.View(func(records []models.User) error {
		user = models.Users(records).FindByID(id)
		if user == nil {
			return ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Modify applies fn to the stored user with the given id and saves the result
func (r *UserRepository) Modify(id int, fn func(user *models.User) error) error {
	return r.Update(func(records []models.User) ([]models.User, error) {
		user := models.Users(records).FindByID(id)
		if user == nil {
			return nil, ErrRecordNotFound
		}
		if err := fn(user); err != nil {
			return nil, err
		}
		return records, nil
	})
}
