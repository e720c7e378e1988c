package handlers

import (
	"net/http"
	"strconv"

	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// statusFor maps a service error to its HTTP status
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsForbidden(err):
		return http.StatusForbidden
	case apperrors.IsAlreadyExists(err), apperrors.IsPreconditionFailed(err), apperrors.IsBoardClosed(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status matching its kind
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromGinContext(c).WithError(err).Error("request failed")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseID reads the :id path parameter, writing a 400 when it is not a positive integer
func parseID(c *gin.Context, entity string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body, writing a 400 on malformed payloads
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}
