package external

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

var _ ports.DeviceLocator = (*ReportedDeviceLocator)(nil)

func TestReportedDeviceLocator_Permissions(t *testing.T) {
	tests := []struct {
		name          string
		report        DeviceReport
		wantStatus    ports.PermissionStatus
		wantRequested ports.PermissionStatus
	}{
		{
			name:          "GrantedWithoutPrompt",
			report:        DeviceReport{Permission: "granted"},
			wantStatus:    ports.PermissionGranted,
			wantRequested: ports.PermissionGranted,
		},
		{
			name:          "PromptAccepted",
			report:        DeviceReport{Permission: "undetermined", PromptAnswer: "Granted"},
			wantStatus:    ports.PermissionUndetermined,
			wantRequested: ports.PermissionGranted,
		},
		{
			name:          "PromptRefused",
			report:        DeviceReport{Permission: "", PromptAnswer: "denied"},
			wantStatus:    ports.PermissionUndetermined,
			wantRequested: ports.PermissionDenied,
		},
		{
			name:          "UnknownValue",
			report:        DeviceReport{Permission: "maybe"},
			wantStatus:    ports.PermissionUndetermined,
			wantRequested: ports.PermissionUndetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator := NewReportedDeviceLocator(tt.report)
			ctx := context.Background()

			status, err := locator.PermissionStatus(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)

			requested, err := locator.RequestPermission(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRequested, requested)
		})
	}
}

func TestReportedDeviceLocator_CurrentPosition(t *testing.T) {
	lat, lon := 23.8103, 90.4125
	ctx := context.Background()

	locator := NewReportedDeviceLocator(DeviceReport{ServicesEnabled: true, Latitude: &lat, Longitude: &lon, PlaceName: " Dhaka "})

	enabled, err := locator.ServicesEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	coords, err := locator.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, &ports.Coordinates{Latitude: lat, Longitude: lon}, coords)

	name, err := locator.PlaceName(ctx, *coords)
	require.NoError(t, err)
	assert.Equal(t, "Dhaka", name)

	_, err = NewReportedDeviceLocator(DeviceReport{Latitude: &lat}).CurrentPosition(ctx)
	assert.True(t, errors.IsExternalAPIError(err))
}
