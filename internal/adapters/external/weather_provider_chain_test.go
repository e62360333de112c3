package external

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/mocks"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

func TestWeatherProviderChain_FallsBackToNextProvider(t *testing.T) {
	primary := mocks.NewWeatherProvider(t)
	fallback := mocks.NewWeatherProvider(t)
	primary.EXPECT().GetProviderName().Return("open-meteo")
	fallback.EXPECT().GetProviderName().Return("open-meteo-fallback")

	primary.EXPECT().GetForecast(mock.Anything, dhaka, 16).Return(nil, errors.NewExternalAPIError("status 502", nil))
	fallback.EXPECT().GetForecast(mock.Anything, dhaka, 16).Return([]ports.DailyWeatherData{{Date: "2025-04-10"}}, nil)

	chain := NewWeatherProviderChain(setupLoggerMock(t), primary, fallback)

	days, err := chain.GetForecast(context.Background(), dhaka, 16)

	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestWeatherProviderChain_AllFail(t *testing.T) {
	primary := mocks.NewWeatherProvider(t)
	fallback := mocks.NewWeatherProvider(t)
	primary.EXPECT().GetProviderName().Return("a")
	fallback.EXPECT().GetProviderName().Return("b")
	primary.EXPECT().GetArchive(mock.Anything, dhaka, "2025-04-01").Return(nil, errors.NewExternalAPIError("down", nil))
	fallback.EXPECT().GetArchive(mock.Anything, dhaka, "2025-04-01").Return(nil, errors.NewExternalAPIError("also down", nil))

	chain := NewWeatherProviderChain(setupLoggerMock(t), primary, fallback)

	_, err := chain.GetArchive(context.Background(), dhaka, "2025-04-01")

	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), "tried 2 providers")
}

func TestWeatherProviderChain_ValidationErrorStopsChain(t *testing.T) {
	primary := mocks.NewWeatherProvider(t)
	fallback := mocks.NewWeatherProvider(t)
	primary.EXPECT().GetProviderName().Return("a")
	primary.EXPECT().GetForecast(mock.Anything, dhaka, 16).Return(nil, errors.NewValidationError("rejected"))

	chain := NewWeatherProviderChain(setupLoggerMock(t), primary, fallback)

	_, err := chain.GetForecast(context.Background(), dhaka, 16)

	assert.True(t, errors.IsValidationError(err))
}

func TestWeatherProviderChain_Empty(t *testing.T) {
	chain := NewWeatherProviderChain(setupLoggerMock(t), nil)

	_, err := chain.GetForecast(context.Background(), dhaka, 16)

	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, "none", chain.GetProviderName())
}

func TestWeatherProviderChain_GetProviderInfo(t *testing.T) {
	primary := mocks.NewWeatherProvider(t)
	fallback := mocks.NewWeatherProvider(t)
	primary.EXPECT().GetProviderName().Return("open-meteo")
	fallback.EXPECT().GetProviderName().Return("open-meteo-fallback")

	info := NewWeatherProviderChain(nil, primary, fallback).GetProviderInfo()

	assert.Equal(t, 2, info["total_providers"])
	assert.Equal(t, []string{"open-meteo", "open-meteo-fallback"}, info["provider_order"])
	assert.Equal(t, true, info["fallback_enabled"])
}
