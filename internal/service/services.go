package service

import (
	"team-board-backend/internal/config"
	"team-board-backend/internal/export"
	"team-board-backend/internal/repository"
)

// Services groups every service built over one set of repositories
type Services struct {
	Users       *UserService
	Teams       *TeamService
	Memberships *MembershipService
	Boards      *BoardService
	Export      *ExportService
}

// New wires the services over repos using cfg for the board rules and export destination
func New(repos *repository.Repositories, cfg *config.Config) (*Services, error) {
	renderer, err := export.NewRenderer(cfg.ExportFormat)
	if err != nil {
		return nil, err
	}

	validate := NewValidator()
	memberships := NewMembershipService(repos.Memberships, repos.Users, repos.Teams)

	return &Services{
		Users:       NewUserService(repos.Users, memberships, validate),
		Teams:       NewTeamService(repos.Teams, repos.Users, memberships, validate),
		Memberships: memberships,
		Boards: NewBoardService(repos, validate, BoardOptions{
			AllowClosedBoardTaskUpdates: cfg.AllowClosedBoardTaskUpdates,
		}),
		Export: NewExportService(repos, renderer, export.NewFileSink(cfg.ExportDir), cfg.ExportFile),
	}, nil
}
