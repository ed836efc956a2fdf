package weather

import (
	"context"
	"errors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/environment-prediction-api/internal/models"
	"github.com/Nazarious-ucu/environment-prediction-api/pkg/logger"
)

type mockAPIClient struct {
	mock.Mock
}

func (m *mockAPIClient) Fetch(
	ctx context.Context,
	lat, lon float64,
) (models.Observation, error) {
	args := m.Called(ctx, lat, lon)
	data, ok := args.Get(0).(models.Observation)

	if !ok {
		return models.Observation{}, args.Error(1)
	}

	return data, args.Error(1)
}

func TestServiceProvider_GetByCoords(t *testing.T) {
	ctx, _ := gin.CreateTestContext(nil)
	successObservation := models.Observation{
		Temperature: 15,
		Humidity:    60,
		WindSpeed:   4.2,
		Pressure:    1013,
		Status:      models.SourceStatusReal,
	}
	emptyObservation := models.Observation{}

	const lat, lon = 40.0, -74.0

	t.Run("Success", func(t *testing.T) {
		mock1 := mockAPIClient{}
		mock2 := mockAPIClient{}

		mock1.On("Fetch", mock.Anything, lat, lon).Return(successObservation, nil)

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
			mock2.AssertNumberOfCalls(t, "Fetch", 0)
		})

		l, err := logger.NewLogger("", "weather_test_success")
		require.NoError(t, err)

		provider := NewService(l, &mock1, &mock2)

		result, err := provider.GetByCoords(ctx, lat, lon)

		require.NoError(t, err)

		assert.Equal(t, successObservation, result)
	})

	t.Run("FirstFailsSecondSuccess", func(t *testing.T) {
		mock1 := mockAPIClient{}
		mock2 := mockAPIClient{}

		mock1.On("Fetch", mock.Anything, lat, lon).Return(emptyObservation, errors.New("error"))
		mock2.On("Fetch", mock.Anything, lat, lon).Return(successObservation, nil)

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
			mock2.AssertExpectations(t)
		})

		l, err := logger.NewLogger("", "weather_test_first_fails_second_success")
		require.NoError(t, err)

		provider := NewService(l, &mock1, &mock2)

		result, err := provider.GetByCoords(ctx, lat, lon)

		require.NoError(t, err)

		assert.Equal(t, successObservation, result)
	})

	t.Run("AllFails", func(t *testing.T) {
		mock1 := mockAPIClient{}
		mock2 := mockAPIClient{}

		mock1.On("Fetch", mock.Anything, lat, lon).Return(emptyObservation, errors.New("error"))
		mock2.On("Fetch", mock.Anything, lat, lon).Return(emptyObservation, errors.New("error"))

		t.Cleanup(func() {
			mock1.AssertExpectations(t)
			mock2.AssertExpectations(t)
		})

		l, err := logger.NewLogger("", "weather_test_all_fails")
		require.NoError(t, err)

		provider := NewService(l, &mock1, &mock2)

		result, err := provider.GetByCoords(ctx, lat, lon)

		require.Error(t, err)
		require.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, emptyObservation, result)
	})
}
