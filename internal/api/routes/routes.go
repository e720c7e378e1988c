package routes

import (
	"fmt"

	"team-board-backend/internal/api/handlers"
	"team-board-backend/internal/api/middleware"
	"team-board-backend/internal/config"
	"team-board-backend/internal/repository"
	"team-board-backend/internal/service"
	"team-board-backend/internal/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application over store
func SetupRoutes(store storage.Store, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories and services
	repos := repository.New(store)
	services, err := service.New(repos, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, cfg.StorageBackend)
	userHandler := handlers.NewUserHandler(services.Users)
	teamHandler := handlers.NewTeamHandler(services.Teams, services.Boards)
	boardHandler := handlers.NewBoardHandler(services.Boards, services.Export)

	// Health check routes (no versioning)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.DescribeUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.GET("/:id/teams", userHandler.GetUserTeams)
		}

		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.DescribeTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.POST("/:id/users", teamHandler.AddUsersToTeam)
			teams.DELETE("/:id/users", teamHandler.RemoveUsersFromTeam)
			teams.GET("/:id/users", teamHandler.ListTeamUsers)
			teams.GET("/:id/boards", teamHandler.ListTeamBoards)
		}

		boards := v1.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("", boardHandler.ListBoards)
			boards.GET("/export", boardHandler.ExportBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PUT("/:id/close", boardHandler.CloseBoard)
			boards.GET("/:id/tasks", boardHandler.ListTasksInBoard)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.POST("", boardHandler.AddTask)
			tasks.GET("/:id", boardHandler.GetTask)
			tasks.PUT("/:id/status", boardHandler.UpdateTaskStatus)
		}
	}

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(store storage.Store, backend string) *gin.Engine {
	router := gin.New()

	healthHandler := handlers.NewHealthHandler(store, backend)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
