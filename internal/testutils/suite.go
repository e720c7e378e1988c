package testutils

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"team-board-backend/internal/config"
	"team-board-backend/internal/database"
	"team-board-backend/internal/database/models"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness probe
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgImage    = "postgres"
	pgTag      = "16-alpine"
	pgUser     = "board"
	pgPassword = "board"
	pgDatabase = "board_test"
)

// postgresContainer is the one Postgres instance shared by every integration suite in a test binary
type postgresContainer struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
}

var shared postgresContainer

// BaseTestSuite hands a migrated Postgres connection to integration suites
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and returns a wrapper around it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", shared.err)
	}
	return &BaseTestSuite{
		DB:     shared.db,
		Config: shared.config,
	}
}

// CleanupSharedContainer purges the container. TestMain calls it once the whole run ends.
func CleanupSharedContainer() {
	if shared.db != nil {
		if sqlDB, err := shared.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}

	logrus.Infof("Purging Docker container %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		logrus.WithError(err).Warn("could not purge shared postgres container")
	}
	shared.resource = nil
	shared.pool = nil
}

// RunWithTestSuite runs testFunc against a clean database
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	s.CleanTestDB()
	testFunc(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the database; the container outlives individual suites.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB deletes every persisted collection row
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	if s.DB.Migrator().HasTable(&models.CollectionRecord{}) {
		s.DB.Exec(`TRUNCATE TABLE "` + models.CollectionRecord{}.TableName() + `"`)
	}
}

func (c *postgresContainer) start() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	c.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgTag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	c.resource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	// The container accepts TCP before Postgres finishes its init scripts, so probe with a plain
	// connection until a ping succeeds.
	if err := pool.Retry(func() error {
		probe, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer probe.Close()
		return probe.Ping()
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent, MaxOpenConns: 5})
	if err != nil {
		return fmt.Errorf("could not initialize database: %w", err)
	}
	c.db = db

	c.config = &config.Config{
		Environment:    "test",
		LogLevel:       "debug",
		StorageBackend: config.StoragePostgres,
		DatabaseURL:    dsn,
		ExportDir:      "output",
		ExportFile:     "output.txt",
		ExportFormat:   "text",

		AllowClosedBoardTaskUpdates: true,
	}

	logrus.Infof("Shared Postgres ready on port %s", port)
	return nil
}
