package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/domain"
	projecthttp "github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/http"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/energy-catalog-backend/internal/projects/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := repository.NewSeededCatalog()
	require.NoError(t, err)

	router := gin.New()
	h := projecthttp.New(service.NewProjectService(catalog), zap.NewNop())
	h.Register(router.Group("/api/projects"))
	return router
}

func doGet(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeProjects(t *testing.T, rr *httptest.ResponseRecorder) []domain.Project {
	t.Helper()
	var items []domain.Project
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	return items
}

func TestListProjects_All(t *testing.T) {
	router := setupRouter(t)

	rr := doGet(t, router, "/api/projects")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	items := decodeProjects(t, rr)
	require.Len(t, items, 3)
	assert.Equal(t, "Solar Farm Alpha", items[0].Name)
	assert.Equal(t, "Wind Farm Beta", items[1].Name)
	assert.Equal(t, "Hydro Plant Gamma", items[2].Name)
}

func TestListProjects_FilterIgnoresCase(t *testing.T) {
	router := setupRouter(t)

	var bodies []string
	for _, v := range []string{"SOLAR", "solar", "Solar"} {
		rr := doGet(t, router, "/api/projects?project_type="+v)
		require.Equal(t, http.StatusOK, rr.Code)
		bodies = append(bodies, rr.Body.String())

		items := decodeProjects(t, rr)
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].ID)
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[0], bodies[2])
}

func TestListProjects_UnknownTypeIsEmptyArray(t *testing.T) {
	router := setupRouter(t)

	rr := doGet(t, router, "/api/projects?project_type=geothermal")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListProjects_EmptyFilterReturnsAll(t *testing.T) {
	router := setupRouter(t)

	rr := doGet(t, router, "/api/projects?project_type=")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeProjects(t, rr), 3)
}

func TestGetProject_Found(t *testing.T) {
	router := setupRouter(t)

	rr := doGet(t, router, "/api/projects/2")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"id":2,"name":"Wind Farm Beta","type":"wind","latitude":34.0522,"longitude":-118.2437}`,
		rr.Body.String())
}

func TestGetProject_NotFound(t *testing.T) {
	router := setupRouter(t)

	rr := doGet(t, router, "/api/projects/999")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Project not found"}`, rr.Body.String())
}

func TestGetProject_NonIntegerID(t *testing.T) {
	router := setupRouter(t)

	rr := doGet(t, router, "/api/projects/abc")
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t,
		`{"detail":[{"loc":["path","project_id"],"msg":"value is not a valid integer","type":"type_error.integer"}]}`,
		rr.Body.String())
}

func TestGetProject_Idempotent(t *testing.T) {
	router := setupRouter(t)

	first := doGet(t, router, "/api/projects/1").Body.String()
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, doGet(t, router, "/api/projects/1").Body.String())
	}
}

func TestListProjects_RepeatedFilterUsesLastValue(t *testing.T) {
	router := setupRouter(t)

	rr := doGet(t, router, "/api/projects?project_type=solar&project_type=WIND")
	require.Equal(t, http.StatusOK, rr.Code)

	items := decodeProjects(t, rr)
	require.Len(t, items, 1)
	assert.Equal(t, "Wind Farm Beta", items[0].Name)
}

type failingReader struct {
	err error
}

func (f failingReader) List(ctx context.Context, projectType *string) ([]domain.Project, error) {
	return nil, f.err
}

func (f failingReader) Get(ctx context.Context, id int) (*domain.Project, error) {
	return nil, f.err
}

func setupFailingRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	projecthttp.New(failingReader{err: err}, zap.NewNop()).Register(router.Group("/api/projects"))
	return router
}

func TestHandlers_UnexpectedErrorIsInternal(t *testing.T) {
	router := setupFailingRouter(errors.New("catalog unavailable"))

	for _, path := range []string{"/api/projects", "/api/projects?project_type=solar", "/api/projects/1"} {
		rr := doGet(t, router, path)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, path)
		assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rr.Body.String(), path)
	}
}

func TestGetProject_WrappedNotFoundIs404(t *testing.T) {
	router := setupFailingRouter(fmt.Errorf("lookup: %w", domain.ErrProjectNotFound))

	rr := doGet(t, router, "/api/projects/7")
	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"Project not found"}`, rr.Body.String())
}
