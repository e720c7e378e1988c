package testutils

import (
	"testing"

	"team-board-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestFactorySet(t *testing.T) {
	factories := NewFactorySet()

	user := factories.User.Create(3)
	assert.Equal(t, 3, user.ID)
	assert.Equal(t, "user3", user.Name)

	team := factories.Team.Create(2, user.ID)
	assert.Equal(t, user.ID, team.Admin)
	assert.NotNil(t, team.Users)

	board := factories.Board.Closed(5, team.ID)
	assert.True(t, board.IsClosed())

	task := factories.Task.WithStatus(1, board.ID, user.ID, models.TaskStatusInProgress)
	assert.Equal(t, models.TaskStatusInProgress, task.TaskStatus)
	assert.False(t, task.IsClosed())
}
