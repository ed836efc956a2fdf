//go:build unit

package scenarios_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/handlers/scenarios"
	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) List() []models.Scenario {
	args := m.Called()

	list, _ := args.Get(0).([]models.Scenario)

	return list
}

func (m *mockCatalog) Get(name string) (models.Scenario, bool) {
	args := m.Called(name)

	scenario, _ := args.Get(0).(models.Scenario)

	return scenario, args.Bool(1)
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req, err := http.NewRequest(http.MethodGet, "/scenarios", nil)
	require.NoError(t, err)
	c.Request = req

	m := &mockCatalog{}
	m.On("List").Return([]models.Scenario{
		{Name: "downtown_core", Description: "Dense city center", Config: map[string]float64{"concrete_coverage": 0.7}},
	}).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	scenarios.NewHandler(m).List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{
			"name": "downtown_core",
			"description": "Dense city center",
			"config": {"concrete_coverage": 0.7}
		}
	]`, rec.Body.String())
}

func TestGet_Found(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req, err := http.NewRequest(http.MethodGet, "/scenarios/green_district", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "name", Value: "green_district"}}

	m := &mockCatalog{}
	m.On("Get", "green_district").Return(models.Scenario{
		Name:   "green_district",
		Config: map[string]float64{"vegetation_coverage": 0.45},
	}, true).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	scenarios.NewHandler(m).Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"vegetation_coverage":0.45`)
}

func TestGet_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req, err := http.NewRequest(http.MethodGet, "/scenarios/atlantis", nil)
	require.NoError(t, err)
	c.Request = req
	c.Params = gin.Params{{Key: "name", Value: "atlantis"}}

	m := &mockCatalog{}
	m.On("Get", "atlantis").Return(models.Scenario{}, false).Once()

	t.Cleanup(func() {
		m.AssertExpectations(t)
	})

	scenarios.NewHandler(m).Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error": "scenario not found: atlantis"}`, rec.Body.String())
}
