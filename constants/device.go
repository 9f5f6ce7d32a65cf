package constants

import "time"

// Device Timing
const (
	// PanelMaxFPS is the display ceiling used when the app asks for an unthrottled refresh
	PanelMaxFPS = 50

	// DefaultRefreshRate is the firmware rate before the app changes it
	DefaultRefreshRate = 30

	// FPSWindow is the averaging window for the fps metric
	FPSWindow = time.Second

	// DetentDegrees is the crank rotation between two detent clicks
	DetentDegrees = 30
)
