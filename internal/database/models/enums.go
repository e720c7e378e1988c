package models

// BoardStatus defines the lifecycle states of a board
type BoardStatus string

const (
	BoardStatusOpen   BoardStatus = "Open"
	BoardStatusClosed BoardStatus = "Closed"
)

// TaskStatus defines the lifecycle states of a task
type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "Open"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusClosed     TaskStatus = "Closed"
)

// IsValid checks if the BoardStatus is valid
func (s BoardStatus) IsValid() bool {
	switch s {
	case BoardStatusOpen, BoardStatusClosed:
		return true
	}
	return false
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusInProgress, TaskStatusClosed:
		return true
	}
	return false
}
