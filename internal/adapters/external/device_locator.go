package external

import (
	"context"
	"strings"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// DeviceReport is the location state a client device sends with a resolve request
type DeviceReport struct {
	ServicesEnabled bool   `json:"services_enabled"`
	Permission      string `json:"permission"`
	// PromptAnswer is what the user chose when asked for permission. Empty
	// means the device could not prompt.
	PromptAnswer string   `json:"prompt_answer"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PlaceName    string   `json:"place_name"`
}

// ReportedDeviceLocator implements DeviceLocator port from a device report
type ReportedDeviceLocator struct {
	report DeviceReport
}

// NewReportedDeviceLocator creates a locator answering from report
func NewReportedDeviceLocator(report DeviceReport) *ReportedDeviceLocator {
	return &ReportedDeviceLocator{report: report}
}

func (l *ReportedDeviceLocator) ServicesEnabled(ctx context.Context) (bool, error) {
	return l.report.ServicesEnabled, nil
}

func (l *ReportedDeviceLocator) PermissionStatus(ctx context.Context) (ports.PermissionStatus, error) {
	return parsePermission(l.report.Permission), nil
}

// RequestPermission returns the prompt answer, or the current status when no
// prompt took place
func (l *ReportedDeviceLocator) RequestPermission(ctx context.Context) (ports.PermissionStatus, error) {
	if strings.TrimSpace(l.report.PromptAnswer) == "" {
		return parsePermission(l.report.Permission), nil
	}
	return parsePermission(l.report.PromptAnswer), nil
}

func (l *ReportedDeviceLocator) CurrentPosition(ctx context.Context) (*ports.Coordinates, error) {
	if l.report.Latitude == nil || l.report.Longitude == nil {
		return nil, errors.NewExternalAPIError("device did not report a position", nil)
	}
	return &ports.Coordinates{Latitude: *l.report.Latitude, Longitude: *l.report.Longitude}, nil
}

func (l *ReportedDeviceLocator) PlaceName(ctx context.Context, coords ports.Coordinates) (string, error) {
	return strings.TrimSpace(l.report.PlaceName), nil
}

func parsePermission(s string) ports.PermissionStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ports.PermissionGranted):
		return ports.PermissionGranted
	case string(ports.PermissionDenied):
		return ports.PermissionDenied
	default:
		return ports.PermissionUndetermined
	}
}
