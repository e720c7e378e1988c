package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"team-board-backend/internal/config"
	"team-board-backend/internal/storage"
	"team-board-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Environment:                 "test",
		StorageBackend:              config.StorageMemory,
		ExportDir:                   t.TempDir(),
		ExportFile:                  "output.txt",
		ExportFormat:                "text",
		AllowClosedBoardTaskUpdates: true,
		AllowedOrigins:              []string{"http://localhost:3000"},
	}
}

func setup(t *testing.T, cfg *config.Config) *testutils.HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router, err := SetupRoutes(storage.NewMemoryStore(), cfg)
	require.NoError(t, err)
	return &testutils.HTTPTestSuite{Router: router}
}

func TestSetupRoutesRejectsUnknownExportFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.ExportFormat = "pdf"

	_, err := SetupRoutes(storage.NewMemoryStore(), cfg)
	assert.ErrorContains(t, err, "unknown export format")
}

func TestHealthRoutes(t *testing.T) {
	router := SetupHealthRoutes(storage.NewMemoryStore(), config.StorageMemory)
	httpSuite := &testutils.HTTPTestSuite{Router: router}

	for _, path := range []string{"/health", "/health/ready", "/health/live"} {
		assert.Equal(t, http.StatusOK, httpSuite.MakeRequest(http.MethodGet, path, nil).Code, path)
	}
}

func TestRequestIDHeader(t *testing.T) {
	httpSuite := setup(t, testConfig(t))

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	recorder = httpSuite.MakeRequestWithHeaders(http.MethodGet, "/health/live", nil, map[string]string{"X-Request-ID": "trace-1"})
	assert.Equal(t, "trace-1", recorder.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	httpSuite := setup(t, testConfig(t))

	recorder := httpSuite.MakeRequestWithHeaders(http.MethodOptions, "/api/v1/users", nil, map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

// TestBoardLifecycle walks a board from creation to export over the real stack
func TestBoardLifecycle(t *testing.T) {
	cfg := testConfig(t)
	httpSuite := setup(t, cfg)

	var user map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{
		"name": "alice", "display_name": "Alice", "description": "d",
	}), http.StatusCreated, &user)
	assert.EqualValues(t, 1, user["id"])

	testutils.AssertErrorResponse(t, httpSuite.MakeRequest(http.MethodPost, "/api/v1/users", map[string]interface{}{"name": "alice"}),
		http.StatusConflict, "already exists")

	var team map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams", map[string]interface{}{
		"name": "core", "description": "d", "admin": 1,
	}), http.StatusCreated, &team)
	assert.EqualValues(t, 1, team["id"])

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams/1/users", map[string]interface{}{"users": []int{1}})
	require.Equal(t, http.StatusNoContent, recorder.Code)

	testutils.AssertErrorResponse(t, httpSuite.MakeRequest(http.MethodPost, "/api/v1/boards", map[string]interface{}{
		"name": "Sprint1", "team_id": 7,
	}), http.StatusNotFound, "team not found")

	var board map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodPost, "/api/v1/boards", map[string]interface{}{
		"name": "Sprint1", "description": "d", "team_id": 1,
	}), http.StatusCreated, &board)
	assert.Equal(t, "Open", board["board_status"])

	var task map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodPost, "/api/v1/tasks", map[string]interface{}{
		"board_id": 1, "title": "Fix bug", "description": "d", "user_id": 1,
	}), http.StatusCreated, &task)
	assert.Equal(t, "Open", task["task_status"])

	testutils.AssertErrorResponse(t, httpSuite.MakeRequest(http.MethodPut, "/api/v1/boards/1/close", nil),
		http.StatusConflict, "not closed")

	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodPut, "/api/v1/tasks/1/status", map[string]interface{}{"status": "Closed"}),
		http.StatusOK, &task)
	assert.Equal(t, "Closed", task["task_status"])

	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodPut, "/api/v1/boards/1/close", nil), http.StatusOK, &board)
	assert.Equal(t, "Closed", board["board_status"])
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodPut, "/api/v1/boards/1/close", nil), http.StatusOK, &board)

	var open []map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/api/v1/boards", nil), http.StatusOK, &open)
	assert.Empty(t, open)

	var result map[string]interface{}
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest(http.MethodGet, "/api/v1/boards/export?download=false", nil), http.StatusOK, &result)
	assert.Equal(t, filepath.Join(cfg.ExportDir, "output.txt"), result["out_file"])

	data, err := os.ReadFile(filepath.Join(cfg.ExportDir, "output.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Board #1: Sprint1 [Closed]")
	assert.Contains(t, string(data), "#1 Fix bug [Closed]")

	recorder = httpSuite.MakeRequest(http.MethodGet, "/api/v1/boards/export", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "output.txt")
}
