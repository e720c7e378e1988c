// Package export renders the board report and writes it to its destination.
package export

import (
	"time"
)

// Report is the full board export: every board in storage order with its team and tasks
type Report struct {
	GeneratedAt time.Time     `json:"generated_at" yaml:"generated_at"`
	Boards      []BoardReport `json:"boards" yaml:"boards"`
}

// BoardReport is one board joined with its owning team
type BoardReport struct {
	BoardID           int          `json:"board_id" yaml:"board_id"`
	BoardName         string       `json:"board_name" yaml:"board_name"`
	Description       string       `json:"description" yaml:"description"`
	TeamID            int          `json:"team_id" yaml:"team_id"`
	TeamName          string       `json:"team_name" yaml:"team_name"`
	TeamDescription   string       `json:"team_description" yaml:"team_description"`
	TeamCreationTime  time.Time    `json:"team_creation_time" yaml:"team_creation_time"`
	BoardCreationTime time.Time    `json:"board_creation_time" yaml:"board_creation_time"`
	BoardStatus       string       `json:"board_status" yaml:"board_status"`
	Tasks             []TaskReport `json:"tasks" yaml:"tasks"`
}

// TaskReport is one task joined with its assignee
type TaskReport struct {
	TaskID          int       `json:"task_id" yaml:"task_id"`
	TaskTitle       string    `json:"task_title" yaml:"task_title"`
	Description     string    `json:"description" yaml:"description"`
	UserID          int       `json:"user_id" yaml:"user_id"`
	UserName        string    `json:"user_name" yaml:"user_name"`
	UserDisplayName string    `json:"user_display_name" yaml:"user_display_name"`
	TaskStatus      string    `json:"task_status" yaml:"task_status"`
	CreationTime    time.Time `json:"creation_time" yaml:"creation_time"`
}
