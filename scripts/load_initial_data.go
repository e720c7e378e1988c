package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"team-board-backend/internal/config"
	"team-board-backend/internal/database/models"
	apperrors "team-board-backend/internal/errors"
	"team-board-backend/internal/repository"
	"team-board-backend/internal/service"
	"team-board-backend/internal/storage"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Simple structures that reference other records by name
type UserData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
}

type TeamData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Admin       string   `yaml:"admin"`
	Members     []string `yaml:"members,omitempty"`
}

type TaskData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Assignee    string `yaml:"assignee"`
	Status      string `yaml:"status,omitempty"`
}

type BoardData struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Team        string     `yaml:"team"`
	Tasks       []TaskData `yaml:"tasks,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type BoardsFile struct {
	Boards []BoardData `yaml:"boards"`
}

// loadCounts reports how many records a run created
type loadCounts struct {
	Users, Teams, Boards, Tasks int
}

func main() {
	logrus.Info("Loading initial data from YAML files")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.Open(cfg)
	if err != nil {
		logrus.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	services, err := service.New(repository.New(store), cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize services: %v", err)
	}

	counts, err := loadDataFromYAMLFiles(services, "scripts/data")
	if err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":  counts.Users,
		"teams":  counts.Teams,
		"boards": counts.Boards,
		"tasks":  counts.Tasks,
	}).Info("Initial data loaded successfully")
}

// loadDataFromYAMLFiles creates the records described under dataDir through the services, so every
// business rule applies. Records whose name already exists are reused, which makes reruns safe.
func loadDataFromYAMLFiles(services *service.Services, dataDir string) (*loadCounts, error) {
	var users UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	var teams TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teams); err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	var boards BoardsFile
	if err := readYAML(filepath.Join(dataDir, "boards.yaml"), &boards); err != nil {
		return nil, fmt.Errorf("failed to load boards: %w", err)
	}

	counts := &loadCounts{}

	// Create users first
	userMap := make(map[string]int)
	for _, userData := range users.Users {
		id, created, err := createUser(services.Users, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.Name, err)
		}
		userMap[userData.Name] = id
		if created {
			counts.Users++
		}
	}
	logrus.Infof("Users: %d created, %d total", counts.Users, len(users.Users))

	// Create teams and link their members
	teamMap := make(map[string]int)
	for _, teamData := range teams.Teams {
		id, created, err := createTeam(services.Teams, teamData, userMap)
		if err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = id
		if created {
			counts.Teams++
		}
	}
	logrus.Infof("Teams: %d created, %d total", counts.Teams, len(teams.Teams))

	// Create boards with their tasks
	for _, boardData := range boards.Boards {
		boardID, created, err := createBoard(services.Boards, boardData, teamMap)
		if err != nil {
			return nil, fmt.Errorf("failed to create board %s: %w", boardData.Name, err)
		}
		if !created {
			continue
		}
		counts.Boards++

		for _, taskData := range boardData.Tasks {
			if err := createTask(services.Boards, boardID, taskData, userMap); err != nil {
				logrus.WithError(err).Warnf("Failed to create task %s on board %s", taskData.Title, boardData.Name)
				continue
			}
			counts.Tasks++
		}
	}
	logrus.Infof("Boards: %d created, %d total", counts.Boards, len(boards.Boards))

	return counts, nil
}

// readYAML decodes path into out. A missing file leaves out empty.
func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.Warnf("%s not found, skipping", path)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, out)
}

func createUser(users service.UserServiceInterface, data UserData) (int, bool, error) {
	user, err := users.CreateUser(&service.CreateUserRequest{
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Description: data.Description,
	})
	if err == nil {
		return user.ID, true, nil
	}
	if !apperrors.IsAlreadyExists(err) {
		return 0, false, err
	}

	existing, err := users.ListUsers()
	if err != nil {
		return 0, false, err
	}
	for _, u := range existing {
		if u.Name == data.Name {
			return u.ID, false, nil
		}
	}
	return 0, false, fmt.Errorf("user %s reported as existing but not listed", data.Name)
}

func createTeam(teams service.TeamServiceInterface, data TeamData, userMap map[string]int) (int, bool, error) {
	adminID, ok := userMap[data.Admin]
	if !ok {
		return 0, false, fmt.Errorf("admin %q is not a known user", data.Admin)
	}

	created := true
	team, err := teams.CreateTeam(&service.CreateTeamRequest{
		Name:        data.Name,
		Description: data.Description,
		Admin:       adminID,
	})
	if err != nil {
		if !apperrors.IsAlreadyExists(err) {
			return 0, false, err
		}
		if team, err = findTeam(teams, data.Name); err != nil {
			return 0, false, err
		}
		created = false
	}

	if len(data.Members) > 0 {
		memberIDs := make([]int, 0, len(data.Members))
		for _, name := range data.Members {
			id, ok := userMap[name]
			if !ok {
				return 0, false, fmt.Errorf("member %q is not a known user", name)
			}
			memberIDs = append(memberIDs, id)
		}
		if err := teams.AddUsersToTeam(team.ID, &service.TeamUsersRequest{Users: memberIDs}); err != nil {
			return 0, false, fmt.Errorf("failed to link members: %w", err)
		}
	}

	return team.ID, created, nil
}

func findTeam(teams service.TeamServiceInterface, name string) (*service.TeamResponse, error) {
	existing, err := teams.ListTeams()
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].Name == name {
			return &existing[i], nil
		}
	}
	return nil, fmt.Errorf("team %s reported as existing but not listed", name)
}

func createBoard(boards service.BoardServiceInterface, data BoardData, teamMap map[string]int) (int, bool, error) {
	teamID, ok := teamMap[data.Team]
	if !ok {
		return 0, false, fmt.Errorf("team %q is not a known team", data.Team)
	}

	board, err := boards.CreateBoard(&service.CreateBoardRequest{
		Name:        data.Name,
		Description: data.Description,
		TeamID:      teamID,
	})
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return board.ID, true, nil
}

func createTask(boards service.BoardServiceInterface, boardID int, data TaskData, userMap map[string]int) error {
	userID, ok := userMap[data.Assignee]
	if !ok {
		return fmt.Errorf("assignee %q is not a known user", data.Assignee)
	}

	task, err := boards.AddTask(&service.CreateTaskRequest{
		BoardID:     boardID,
		Title:       data.Title,
		Description: data.Description,
		UserID:      userID,
	})
	if err != nil {
		return err
	}

	if data.Status == "" || data.Status == string(task.TaskStatus) {
		return nil
	}
	_, err = boards.UpdateTaskStatus(task.ID, &service.UpdateTaskStatusRequest{Status: models.TaskStatus(data.Status)})
	return err
}
