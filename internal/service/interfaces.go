package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	ListUsers() ([]UserResponse, error)
	DescribeUser(id int) (*UserResponse, error)
	UpdateUser(id int, req *UpdateUserRequest) (*UserResponse, error)
	GetUserTeams(id int) ([]TeamResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	ListTeams() ([]TeamResponse, error)
	DescribeTeam(id int) (*TeamResponse, error)
	UpdateTeam(id int, req *UpdateTeamRequest) (*TeamResponse, error)
	AddUsersToTeam(teamID int, req *TeamUsersRequest) error
	RemoveUsersFromTeam(teamID int, req *TeamUsersRequest) error
	ListTeamUsers(teamID int) ([]UserSummary, error)
}

// BoardServiceInterface defines the interface for board service
type BoardServiceInterface interface {
	CreateBoard(req *CreateBoardRequest) (*BoardResponse, error)
	CloseBoard(id int) (*BoardResponse, error)
	AddTask(req *CreateTaskRequest) (*TaskResponse, error)
	UpdateTaskStatus(id int, req *UpdateTaskStatusRequest) (*TaskResponse, error)
	ListBoards() ([]BoardResponse, error)
	ListBoardsOfTeam(teamID int) ([]BoardResponse, error)
	ListTasksInBoard(boardID int) ([]TaskResponse, error)
	GetBoard(id int) (*BoardResponse, error)
	GetTask(id int) (*TaskResponse, error)
}

// ExportServiceInterface defines the interface for export service
type ExportServiceInterface interface {
	ExportBoard() (*ExportResult, error)
}

var (
	_ UserServiceInterface   = (*UserService)(nil)
	_ TeamServiceInterface   = (*TeamService)(nil)
	_ BoardServiceInterface  = (*BoardService)(nil)
	_ ExportServiceInterface = (*ExportService)(nil)
)
