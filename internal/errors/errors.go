package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness violation on an entity name
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ForbiddenError represents a violated cross-entity relationship rule
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// PreconditionFailedError represents a state transition whose precondition does not hold
type PreconditionFailedError struct {
	Message string
}

func (e *PreconditionFailedError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound  = &NotFoundError{Entity: "user"}
	ErrAdminNotFound = &NotFoundError{Entity: "admin user"}
	ErrTeamNotFound  = &NotFoundError{Entity: "team"}
	ErrBoardNotFound = &NotFoundError{Entity: "board"}
	ErrTaskNotFound  = &NotFoundError{Entity: "task"}
)

// Already Exists Errors
var (
	ErrUserExists  = &AlreadyExistsError{Entity: "user", Context: "with this name"}
	ErrTeamExists  = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrBoardExists = &AlreadyExistsError{Entity: "board", Context: "with this name for this team"}
	ErrTaskExists  = &AlreadyExistsError{Entity: "task", Context: "with this title in this board"}
)

// Business Logic Errors
var (
	ErrBoardClosed       = errors.New("board is closed")
	ErrAssigneeNotInTeam = &ForbiddenError{Message: "the user the task is assigned to does not belong to the team that the board is for"}
)

// Configuration Errors
var (
	ErrUnknownStorageBackend = &ConfigurationError{Message: "unknown storage backend"}
	ErrUnknownExportFormat   = &ConfigurationError{Message: "unknown export format"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsPreconditionFailed checks if an error is a PreconditionFailedError
func IsPreconditionFailed(err error) bool {
	var preconditionErr *PreconditionFailedError
	return errors.As(err, &preconditionErr)
}

// IsBoardClosed checks if an error reports a mutation on a closed board
func IsBoardClosed(err error) bool {
	return errors.Is(err, ErrBoardClosed)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewPreconditionFailedError creates a new PreconditionFailedError
func NewPreconditionFailedError(message string) error {
	return &PreconditionFailedError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
