package service_test

import (
	"testing"

	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatorReportsJSONFieldNames(t *testing.T) {
	v := service.NewValidator()

	err := v.Struct(&service.CreateTaskRequest{Title: "t", UserID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "board_id")
}

func TestValidationMessages(t *testing.T) {
	svc := service.NewTeamService(nil, nil, nil, service.NewValidator())

	err := svc.AddUsersToTeam(1, &service.TeamUsersRequest{})
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "users", validationErr.Field)
	assert.Equal(t, "is required", validationErr.Message)

	err = svc.AddUsersToTeam(1, &service.TeamUsersRequest{Users: make([]int, 51)})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "must contain at most 50 item(s)", validationErr.Message)
}
