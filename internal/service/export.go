package service

import (
	"fmt"
	"time"

	"team-board-backend/internal/export"
	"team-board-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// ExportService builds the board report and hands it to the export sink
type ExportService struct {
	repos    *repository.Repositories
	renderer export.Renderer
	sink     export.Sink
	fileName string
}

// NewExportService creates a new export service writing fileName through sink
func NewExportService(repos *repository.Repositories, renderer export.Renderer, sink export.Sink, fileName string) *ExportService {
	return &ExportService{
		repos:    repos,
		renderer: renderer,
		sink:     sink,
		fileName: fileName,
	}
}

// ExportResult describes a written export
type ExportResult struct {
	Path        string `json:"out_file"`
	ContentType string `json:"content_type"`
	Boards      int    `json:"boards"`
}

// BuildReport joins every board with its team and every task with its assignee, using one
// consistent snapshot. Closed boards and tasks are included.
func (s *ExportService) BuildReport() (*export.Report, error) {
	snap, err := s.repos.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to read export snapshot: %w", err)
	}

	users := snap.Users.Index()
	teams := snap.Teams.Index()

	tasksByBoard := make(map[int][]export.TaskReport, len(snap.Boards))
	for _, task := range snap.Tasks {
		entry := export.TaskReport{
			TaskID:       task.ID,
			TaskTitle:    task.Title,
			Description:  task.Description,
			UserID:       task.UserID,
			TaskStatus:   string(task.TaskStatus),
			CreationTime: task.CreationTime.Time,
		}
		if user, ok := users[task.UserID]; ok {
			entry.UserName = user.Name
			entry.UserDisplayName = user.DisplayName
		} else {
			logrus.WithFields(logrus.Fields{"task_id": task.ID, "user_id": task.UserID}).Warn("export: task assignee not found")
		}
		tasksByBoard[task.BoardID] = append(tasksByBoard[task.BoardID], entry)
	}

	report := &export.Report{
		GeneratedAt: time.Now().UTC(),
		Boards:      make([]export.BoardReport, 0, len(snap.Boards)),
	}
	for _, board := range snap.Boards {
		entry := export.BoardReport{
			BoardID:           board.ID,
			BoardName:         board.Name,
			Description:       board.Description,
			TeamID:            board.TeamID,
			BoardCreationTime: board.CreationTime.Time,
			BoardStatus:       string(board.BoardStatus),
			Tasks:             tasksByBoard[board.ID],
		}
		if entry.Tasks == nil {
			entry.Tasks = []export.TaskReport{}
		}
		if team, ok := teams[board.TeamID]; ok {
			entry.TeamName = team.Name
			entry.TeamDescription = team.Description
			entry.TeamCreationTime = team.CreationTime.Time
		} else {
			logrus.WithFields(logrus.Fields{"board_id": board.ID, "team_id": board.TeamID}).Warn("export: board team not found")
		}
		report.Boards = append(report.Boards, entry)
	}

	return report, nil
}

// ExportBoard renders the report and writes it, returning where it was written
func (s *ExportService) ExportBoard() (*ExportResult, error) {
	report, err := s.BuildReport()
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(report)
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	path, err := s.sink.Write(s.fileName, data)
	if err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": path, "boards": len(report.Boards)}).Info("boards exported")
	return &ExportResult{
		Path:        path,
		ContentType: s.renderer.ContentType(),
		Boards:      len(report.Boards),
	}, nil
}
